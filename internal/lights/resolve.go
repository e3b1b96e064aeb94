package lights

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/OCharnyshevich/dynlights/internal/gamedata"
)

// luminanceFromBlock is the luminance value that borrows the light level of the
// block the item places.
const luminanceFromBlock = "block"

var errNotObject = errors.New("not a JSON object")

// Lookup is the registry view the resolver needs. *gamedata.GameData implements it.
type Lookup interface {
	ResolveItem(id gamedata.Identifier) gamedata.Item
	ResolveBlock(id gamedata.Identifier) gamedata.Block
	PlacedBlock(item gamedata.Item) gamedata.Block
}

// Descriptor documents the on-disk item light source format. Resolution reads
// the raw fields instead so a missing key can be told apart from a zero value.
type Descriptor struct {
	Item           string `json:"item" jsonschema:"title=Item,description=Identifier of the item that emits light.,pattern=^([a-z0-9_.-]+:)?[a-z0-9_./-]+$,minLength=1,required"`
	Luminance      any    `json:"luminance" jsonschema:"title=Luminance,description=Light level 0-15; or the word block to use the light level of the block the item places; or a block identifier to borrow its light level.,oneof_type=integer;string,required"`
	WaterSensitive bool   `json:"water_sensitive,omitempty" jsonschema:"title=Water sensitive,description=Stop emitting light while submerged in water.,default=false"`
}

type outcome int

const (
	resolved outcome = iota
	// absent is an expected miss such as an item from a mod that is not installed.
	absent
	// malformed is a broken descriptor; the resolver logs it.
	malformed
)

// Resolver turns item light source descriptors into ItemLightSource values.
type Resolver struct {
	data Lookup
	log  *slog.Logger
}

func NewResolver(data Lookup, log *slog.Logger) *Resolver {
	return &Resolver{data: data, log: log}
}

// Resolve builds the light source described by fields. It never fails loudly:
// a descriptor that cannot be turned into a light source yields false, and
// malformed ones are logged.
func (r *Resolver) Resolve(id gamedata.Identifier, fields map[string]any) (ItemLightSource, bool) {
	src, out, reason := r.resolve(id, fields)
	if out == malformed {
		r.warnMalformed(id, reason)
	}
	return src, out == resolved
}

// ResolveJSON decodes a JSON object and resolves it.
func (r *Resolver) ResolveJSON(id gamedata.Identifier, data []byte) (ItemLightSource, bool) {
	fields, err := decodeObject(data)
	if err != nil {
		r.warnMalformed(id, "not a JSON object")
		return ItemLightSource{}, false
	}
	return r.Resolve(id, fields)
}

func (r *Resolver) warnMalformed(id gamedata.Identifier, reason string) {
	r.log.Warn("failed to parse item light source, invalid format", "id", id.String(), "reason", reason)
}

func (r *Resolver) resolve(id gamedata.Identifier, fields map[string]any) (ItemLightSource, outcome, string) {
	rawItem, hasItem := fields["item"]
	rawLuminance, hasLuminance := fields["luminance"]
	if !hasItem || !hasLuminance {
		return ItemLightSource{}, malformed, "missing required fields"
	}

	itemName, ok := scalarString(rawItem)
	if !ok {
		return ItemLightSource{}, malformed, `"item" field value isn't a string`
	}
	item := r.data.ResolveItem(gamedata.ParseIdentifier(itemName))
	if item.IsAir() {
		return ItemLightSource{}, absent, ""
	}

	var luminance int
	if n, ok := asInt(rawLuminance); ok {
		luminance = n
	} else if s, ok := rawLuminance.(string); ok {
		var block gamedata.Block
		if s == luminanceFromBlock {
			if !item.PlacesBlock() {
				return ItemLightSource{}, absent, ""
			}
			block = r.data.PlacedBlock(item)
		} else {
			block = r.data.ResolveBlock(gamedata.ParseIdentifier(s))
		}
		if block.IsAir() {
			return ItemLightSource{}, absent, ""
		}
		luminance = block.LightEmission()
	} else {
		return ItemLightSource{}, malformed, `"luminance" field value isn't string or integer`
	}

	waterSensitive := false
	if raw, ok := fields["water_sensitive"]; ok {
		switch v := raw.(type) {
		case bool:
			waterSensitive = v
		case string:
			waterSensitive = strings.EqualFold(v, "true")
		case json.Number, float64, float32, int, int32, int64:
			// Only the text "true" is true.
		default:
			return ItemLightSource{}, malformed, `"water_sensitive" field value isn't a boolean`
		}
	}

	return ItemLightSource{
		ID:             id,
		Item:           item,
		Luminance:      luminance,
		WaterSensitive: waterSensitive,
	}, resolved, ""
}

// scalarString renders a JSON string, number or boolean as text. A number
// or boolean item names no registered item and resolves to nothing.
func scalarString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case json.Number, float64, float32, int, int32, int64, bool:
		return fmt.Sprint(v), true
	}
	return "", false
}

// asInt accepts the numeric shapes a decoded or hand-built record may carry.
// Fractions truncate toward zero.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int(math.Trunc(f)), true
	case float64:
		return int(math.Trunc(n)), true
	case float32:
		return int(math.Trunc(float64(n))), true
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	}
	return 0, false
}

func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errNotObject
	}
	return fields, nil
}
