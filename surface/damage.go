package surface

import (
	"image"
	"math/bits"
	"sync/atomic"
)

// TileSize is the edge length in pixels of a damage tile.
const TileSize = 32

// damageMap records which tiles were written using an atomic bitmap,
// one bit per tile in row-major order.
type damageMap struct {
	words  []atomic.Uint64
	tilesX int
	tilesY int
}

func newDamageMap(w, h int) *damageMap {
	tx := (w + TileSize - 1) / TileSize
	ty := (h + TileSize - 1) / TileSize
	return &damageMap{
		words:  make([]atomic.Uint64, (tx*ty+63)/64),
		tilesX: tx,
		tilesY: ty,
	}
}

func (d *damageMap) mark(tx, ty int) {
	idx := ty*d.tilesX + tx
	d.words[idx/64].Or(1 << (idx & 63))
}

// markRect marks every tile touching r, given in screen pixels.
func (d *damageMap) markRect(r image.Rectangle) {
	if r.Empty() {
		return
	}
	tx1 := max(r.Min.X/TileSize, 0)
	ty1 := max(r.Min.Y/TileSize, 0)
	tx2 := min((r.Max.X-1)/TileSize, d.tilesX-1)
	ty2 := min((r.Max.Y-1)/TileSize, d.tilesY-1)
	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			d.mark(tx, ty)
		}
	}
}

func (d *damageMap) markAll() {
	n := d.tilesX * d.tilesY
	for i := 0; i < n/64; i++ {
		d.words[i].Store(^uint64(0))
	}
	if rem := n % 64; rem > 0 {
		d.words[n/64].Store(1<<rem - 1)
	}
}

func (d *damageMap) count() int {
	n := 0
	for i := range d.words {
		n += bits.OnesCount64(d.words[i].Load())
	}
	return n
}

// takeRows returns the damaged tiles merged into horizontal runs, in
// row-major order, and clears the map. Tiles past the last column are
// never set, so no masking is needed.
func (d *damageMap) takeRows() []image.Rectangle {
	var out []image.Rectangle
	runStart := -1
	flush := func(tx, ty int) {
		if runStart >= 0 {
			out = append(out, image.Rect(runStart*TileSize, ty*TileSize, tx*TileSize, (ty+1)*TileSize))
			runStart = -1
		}
	}
	snapshot := make([]uint64, len(d.words))
	for i := range d.words {
		snapshot[i] = d.words[i].Swap(0)
	}
	for ty := 0; ty < d.tilesY; ty++ {
		for tx := 0; tx < d.tilesX; tx++ {
			idx := ty*d.tilesX + tx
			if snapshot[idx/64]&(1<<(idx&63)) != 0 {
				if runStart < 0 {
					runStart = tx
				}
			} else {
				flush(tx, ty)
			}
		}
		flush(d.tilesX, ty)
	}
	return out
}
