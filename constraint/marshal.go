package constraint

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/blang/semver/v4"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/fxamacker/cbor/v2"

	"github.com/consensys/tinygroth16"
	"github.com/consensys/tinygroth16/logger"
)

var errInvalidScalarField = errors.New("trying to deserialize a circuit compiled over another scalar field")

// serializedSystem is the on-disk shape of a compiled circuit. Only the gate
// list is stored; the wire layout and constraint rows are rebuilt on read,
// which the deterministic template construction guarantees to be identical.
type serializedSystem struct {
	Version     string
	ScalarField string
	Gates       []Gate
}

// Serialize writes the compiled circuit to w, CBOR-encoded behind a version
// and scalar-field header.
func (s *System) Serialize(w io.Writer) error {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return err
	}
	return em.NewEncoder(w).Encode(serializedSystem{
		Version:     tinygroth16.Version.String(),
		ScalarField: fr.Modulus().Text(16),
		Gates:       s.Gates,
	})
}

// Deserialize reads a compiled circuit from r. A scalar-field mismatch is an
// error; a version mismatch only logs a warning, there are no guarantees on
// compatibility across versions.
func Deserialize(r io.Reader) (*System, error) {
	var raw serializedSystem
	if err := cbor.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	if raw.ScalarField != fr.Modulus().Text(16) {
		return nil, errInvalidScalarField
	}
	objectVersion, err := semver.Parse(raw.Version)
	if err != nil {
		return nil, fmt.Errorf("when parsing circuit version: %w", err)
	}
	if tinygroth16.Version.Compare(objectVersion) != 0 {
		log := logger.Logger()
		log.Warn().Str("binary", tinygroth16.Version.String()).
			Str("object", objectVersion.String()).
			Msg("version mismatch with circuit artifact")
	}

	return NewSystem(raw.Gates)
}

// Write serializes the circuit into a file.
func (s *System) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.Serialize(f)
}

// Read deserializes a circuit from a file.
func Read(path string) (*System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Deserialize(f)
}
