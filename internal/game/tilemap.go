package game

import "math"

// Tile identifies what occupies one grid cell. The numeric values match the
// layout literal below.
type Tile uint8

const (
	TileEmpty      Tile = iota // open ground
	TileBrick                  // destructible wall
	TileSteel                  // indestructible wall
	TilePlayerBase             // player's base, health tracked by Session
	TileEnemyBase              // enemy base, health tracked by Session
	tileCount                  // sentinel
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileBrick:
		return "brick"
	case TileSteel:
		return "steel"
	case TilePlayerBase:
		return "player_base"
	case TileEnemyBase:
		return "enemy_base"
	default:
		return "unknown"
	}
}

// tileDefaultDurability returns the starting hit points for a tile.
// 0 means it cannot be worn down by hits.
func tileDefaultDurability(t Tile) int {
	if t == TileBrick {
		return BrickDurability
	}
	return 0
}

// defaultLayout is the stock battlefield. Row-major, [row][col].
var defaultLayout = [MapSize][MapSize]Tile{
	{2, 0, 1, 0, 0, 0, 1, 0, 0, 2, 4, 0, 1, 0, 0, 0, 1, 0, 0, 2},
	{0, 1, 1, 0, 2, 2, 1, 1, 0, 0, 2, 2, 1, 1, 0, 0, 2, 2, 1, 0},
	{1, 1, 0, 0, 2, 2, 0, 1, 1, 0, 1, 1, 0, 0, 2, 2, 0, 1, 1, 0},
	{0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0},
	{0, 2, 0, 0, 0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 0, 0, 2, 0, 0},
	{0, 2, 0, 1, 1, 1, 0, 2, 0, 0, 0, 2, 0, 1, 1, 1, 0, 2, 0, 0},
	{1, 1, 0, 0, 2, 2, 0, 1, 1, 0, 1, 1, 0, 0, 2, 2, 0, 1, 1, 0},
	{0, 0, 1, 0, 2, 2, 1, 0, 0, 0, 0, 0, 1, 0, 2, 2, 1, 0, 0, 0},
	{2, 1, 1, 0, 0, 0, 1, 1, 1, 2, 2, 1, 1, 1, 0, 0, 0, 1, 1, 2},
	{0, 0, 0, 0, 2, 2, 0, 0, 0, 0, 0, 0, 2, 2, 0, 0, 0, 0, 0, 0},
	{2, 0, 1, 0, 0, 0, 1, 0, 0, 2, 0, 0, 1, 0, 0, 0, 1, 0, 0, 2},
	{0, 1, 1, 0, 2, 2, 1, 1, 0, 0, 2, 2, 1, 1, 0, 0, 2, 2, 1, 0},
	{1, 1, 0, 0, 2, 2, 0, 1, 1, 0, 1, 1, 0, 0, 2, 2, 0, 1, 1, 0},
	{0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0},
	{0, 2, 0, 0, 0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 0, 0, 2, 0, 0},
	{0, 2, 0, 1, 1, 1, 0, 2, 0, 0, 0, 2, 0, 1, 1, 1, 0, 2, 0, 0},
	{1, 1, 0, 0, 2, 2, 0, 1, 1, 0, 1, 1, 0, 0, 2, 2, 0, 1, 1, 0},
	{0, 0, 1, 0, 2, 2, 1, 0, 0, 0, 0, 0, 1, 0, 2, 2, 1, 0, 0, 0},
	{2, 1, 1, 0, 0, 0, 1, 1, 1, 2, 2, 1, 1, 1, 0, 0, 0, 1, 1, 2},
	{0, 0, 0, 0, 2, 2, 0, 0, 0, 3, 0, 0, 2, 2, 0, 0, 0, 0, 0, 0},
}

// DefaultLayout returns a fresh copy of the stock battlefield.
func DefaultLayout() [][]Tile {
	out := make([][]Tile, MapSize)
	for row := range defaultLayout {
		out[row] = append([]Tile(nil), defaultLayout[row][:]...)
	}
	return out
}

// EmptyLayout returns a MapSize×MapSize layout with no walls or bases.
func EmptyLayout() [][]Tile {
	out := make([][]Tile, MapSize)
	for row := range out {
		out[row] = make([]Tile, MapSize)
	}
	return out
}

// TileMap is the authoritative battlefield grid: static layout plus mutable
// brick durability.
type TileMap struct {
	Cols       int
	Rows       int
	Tiles      []Tile // row-major: index = row*Cols + col
	Durability []int
}

// NewTileMap copies layout (indexed [row][col]) and seeds durability.
// Short rows are padded with TileEmpty.
func NewTileMap(layout [][]Tile) *TileMap {
	rows := len(layout)
	cols := 0
	for _, r := range layout {
		if len(r) > cols {
			cols = len(r)
		}
	}
	tm := &TileMap{
		Cols:       cols,
		Rows:       rows,
		Tiles:      make([]Tile, cols*rows),
		Durability: make([]int, cols*rows),
	}
	for row, r := range layout {
		for col, t := range r {
			if t >= tileCount {
				t = TileEmpty
			}
			i := row*cols + col
			tm.Tiles[i] = t
			tm.Durability[i] = tileDefaultDurability(t)
		}
	}
	return tm
}

// InBounds returns true if (col, row) is within the grid.
func (tm *TileMap) InBounds(col, row int) bool {
	return col >= 0 && col < tm.Cols && row >= 0 && row < tm.Rows
}

// TileAt returns the tile at (col, row). Off-grid cells read as steel.
func (tm *TileMap) TileAt(col, row int) Tile {
	if !tm.InBounds(col, row) {
		return TileSteel
	}
	return tm.Tiles[row*tm.Cols+col]
}

// IsPassable returns true only for in-bounds empty tiles.
func (tm *TileMap) IsPassable(col, row int) bool {
	if !tm.InBounds(col, row) {
		return false
	}
	return tm.Tiles[row*tm.Cols+col] == TileEmpty
}

// DurabilityAt returns the remaining hit points at (col, row).
func (tm *TileMap) DurabilityAt(col, row int) int {
	if !tm.InBounds(col, row) {
		return 0
	}
	return tm.Durability[row*tm.Cols+col]
}

// DamageBrick takes one point off a brick and clears it when worn through.
// It reports whether this hit destroyed the brick. Anything other than a
// brick is left alone.
func (tm *TileMap) DamageBrick(col, row int) bool {
	if !tm.InBounds(col, row) {
		return false
	}
	i := row*tm.Cols + col
	if tm.Tiles[i] != TileBrick {
		return false
	}
	tm.Durability[i]--
	if tm.Durability[i] > 0 {
		return false
	}
	tm.Durability[i] = 0
	tm.Tiles[i] = TileEmpty
	return true
}

// Clear turns (col, row) into open ground.
func (tm *TileMap) Clear(col, row int) {
	if !tm.InBounds(col, row) {
		return
	}
	i := row*tm.Cols + col
	tm.Tiles[i] = TileEmpty
	tm.Durability[i] = 0
}

// Set places t at (col, row), resetting durability.
func (tm *TileMap) Set(col, row int, t Tile) {
	if !tm.InBounds(col, row) || t >= tileCount {
		return
	}
	i := row*tm.Cols + col
	tm.Tiles[i] = t
	tm.Durability[i] = tileDefaultDurability(t)
}

// Find returns the first cell holding t in row-major order.
func (tm *TileMap) Find(t Tile) (col, row int, ok bool) {
	for i, v := range tm.Tiles {
		if v == t {
			return i % tm.Cols, i / tm.Cols, true
		}
	}
	return 0, 0, false
}

// Count returns how many cells hold t.
func (tm *TileMap) Count(t Tile) int {
	n := 0
	for _, v := range tm.Tiles {
		if v == t {
			n++
		}
	}
	return n
}

// tileAtPixel maps a pixel coordinate to the grid cell containing it.
func tileAtPixel(x, y float64) (col, row int) {
	return int(math.Floor(x / TileSize)), int(math.Floor(y / TileSize))
}
