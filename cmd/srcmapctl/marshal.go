package main

import (
	"encoding/json"
	"fmt"

	"github.com/sourcemapkit/gosourcemap/pkg/sourcemap"
)

func marshalMap(result *sourcemap.Result) ([]byte, error) {
	data, err := json.Marshal(result.Map)
	if err != nil {
		return nil, fmt.Errorf("marshal source map: %w", err)
	}
	return data, nil
}
