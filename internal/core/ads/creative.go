package ads

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
)

// Per-placement JSON Schemas for the free-form creative document. The
// creative column is jsonb; these are the only shape constraints it has.
var creativeSchemas = map[string]string{
	PlacementFeedBanner: `{
		"type": "object",
		"required": ["image_url", "target_url"],
		"properties": {
			"image_url": {"type": "string", "format": "uri"},
			"target_url": {"type": "string", "format": "uri"},
			"alt_text": {"type": "string"}
		}
	}`,
	PlacementWatchlist: `{
		"type": "object",
		"required": ["headline", "target_url"],
		"properties": {
			"headline": {"type": "string", "maxLength": 80},
			"body": {"type": "string", "maxLength": 200},
			"target_url": {"type": "string", "format": "uri"}
		}
	}`,
	PlacementInterstitial: `{
		"type": "object",
		"required": ["image_url", "target_url", "duration_seconds"],
		"properties": {
			"image_url": {"type": "string", "format": "uri"},
			"target_url": {"type": "string", "format": "uri"},
			"duration_seconds": {"type": "integer", "minimum": 1, "maximum": 30}
		}
	}`,
}

func validateCreative(placement string, creative map[string]any) error {
	schema, ok := creativeSchemas[placement]
	if !ok {
		return fmt.Errorf("unknown placement %q", placement)
	}

	doc, err := json.Marshal(creative)
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return err
	}

	return validation.FromSchemaResult(result)
}
