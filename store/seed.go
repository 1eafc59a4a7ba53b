package store

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/amonks/devflow/growth"
)

//go:embed seed/state.yaml
var seedState []byte

//go:embed seed/catalog.yaml
var seedCatalog []byte

// Seed returns the initial dashboard state.
func Seed() State {
	st, err := DecodeState(seedState)
	if err != nil {
		panic(fmt.Sprintf("decode embedded seed: %v", err))
	}
	return st
}

// ExtendedAchievements returns the decorative achievements shown next to
// the stored ones. They are not part of the state.
func ExtendedAchievements() []growth.Achievement {
	var list []growth.Achievement
	if err := decodeStrict(seedCatalog, &list); err != nil {
		panic(fmt.Sprintf("decode embedded achievement catalog: %v", err))
	}
	return list
}

// DecodeState parses a YAML state document. Fields left out of the document
// keep the values of Empty.
func DecodeState(data []byte) (State, error) {
	st := Empty()
	if err := decodeStrict(data, &st); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	return st, nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}
