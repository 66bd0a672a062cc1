package groth16

import (
	"io"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
)

// WriteTo writes a binary encoding of the proof to w, points in compressed
// form, in the order Ar | Bs | Krs.
func (proof *Proof) WriteTo(w io.Writer) (int64, error) {
	return proof.writeTo(w, false)
}

// WriteRawTo is WriteTo without point compression.
func (proof *Proof) WriteRawTo(w io.Writer) (int64, error) {
	return proof.writeTo(w, true)
}

func (proof *Proof) writeTo(w io.Writer, raw bool) (int64, error) {
	var enc *curve.Encoder
	if raw {
		enc = curve.NewEncoder(w, curve.RawEncoding())
	} else {
		enc = curve.NewEncoder(w)
	}

	toEncode := []interface{}{
		&proof.Ar,
		&proof.Bs,
		&proof.Krs,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom decodes a proof encoded with WriteTo or WriteRawTo. Subgroup
// membership is not checked here; Verify rejects rogue points.
func (proof *Proof) ReadFrom(r io.Reader) (int64, error) {
	dec := curve.NewDecoder(r)

	toDecode := []interface{}{
		&proof.Ar,
		&proof.Bs,
		&proof.Krs,
	}
	for _, v := range toDecode {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}
	return dec.BytesRead(), nil
}

// WriteTo writes a binary encoding of the CRS to w, points compressed.
// The cached values (-[γ]₂, -[δ]₂ and e(α,β)) are not serialized; ReadFrom
// recomputes them.
func (crs *CRS) WriteTo(w io.Writer) (int64, error) {
	return crs.writeTo(w, false)
}

// WriteRawTo is WriteTo without point compression.
func (crs *CRS) WriteRawTo(w io.Writer) (int64, error) {
	return crs.writeTo(w, true)
}

func (crs *CRS) writeTo(w io.Writer, raw bool) (int64, error) {
	var enc *curve.Encoder
	if raw {
		enc = curve.NewEncoder(w, curve.RawEncoding())
	} else {
		enc = curve.NewEncoder(w)
	}

	for _, v := range crs.refs() {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom decodes a CRS encoded with WriteTo or WriteRawTo and restores
// the precomputed verification values.
func (crs *CRS) ReadFrom(r io.Reader) (int64, error) {
	dec := curve.NewDecoder(r)

	for _, v := range crs.refs() {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}

	if err := crs.precompute(); err != nil {
		return dec.BytesRead(), err
	}
	return dec.BytesRead(), nil
}

// refs lists the serialized CRS fields in wire order, shared by the
// encoder and the decoder so the two cannot drift apart.
func (crs *CRS) refs() []interface{} {
	return []interface{}{
		&crs.NbStatement,
		&crs.NbWires,
		&crs.NbConstraints,
		&crs.G1.Alpha,
		&crs.G1.Beta,
		&crs.G1.Delta,
		&crs.G1.X,
		&crs.G1.K,
		&crs.G1.Kpk,
		&crs.G1.Z,
		&crs.G2.Beta,
		&crs.G2.Gamma,
		&crs.G2.Delta,
		&crs.G2.X,
	}
}

// precompute caches -[γ]₂, -[δ]₂ and e(α,β) from the deserialized fields.
func (crs *CRS) precompute() error {
	crs.G2.GammaNeg.Neg(&crs.G2.Gamma)
	crs.G2.DeltaNeg.Neg(&crs.G2.Delta)
	e, err := curve.Pair([]curve.G1Affine{crs.G1.Alpha}, []curve.G2Affine{crs.G2.Beta})
	if err != nil {
		return err
	}
	crs.E = e
	return nil
}
