package protocol

import "io"

// PackedPosition encodes a block position as a single signed 64-bit integer:
// x occupies the top 26 bits, z the next 26, y the bottom 12 — each
// sign-extended independently on decode.
type PackedPosition struct {
	X, Z int32
	Y    int32
}

const (
	xBits = 26
	zBits = 26
	yBits = 12
)

// WriteTo encodes the position as a packed Long.
func (p PackedPosition) WriteTo(w io.Writer) (int64, error) {
	v := (int64(p.X)&0x3FFFFFF)<<38 | (int64(p.Z)&0x3FFFFFF)<<12 | (int64(p.Y) & 0xFFF)
	return Long(v).WriteTo(w)
}

// ReadFrom decodes a packed Long into its three sign-extended components.
func (p *PackedPosition) ReadFrom(r io.Reader) (int64, error) {
	var v Long
	n, err := v.ReadFrom(r)
	if err != nil {
		return n, err
	}

	raw := int64(v)
	x := raw >> 38
	z := (raw >> 12) & 0x3FFFFFF
	y := raw & 0xFFF

	if x >= 1<<(xBits-1) {
		x -= 1 << xBits
	}
	if z >= 1<<(zBits-1) {
		z -= 1 << zBits
	}
	if y >= 1<<(yBits-1) {
		y -= 1 << yBits
	}

	p.X = int32(x)
	p.Z = int32(z)
	p.Y = int32(y)
	return n, nil
}
