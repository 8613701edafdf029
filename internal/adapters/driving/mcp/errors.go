package mcp

import "errors"

// ErrMissingCuneifyService indicates the required rendering service
// port was not provided.
var ErrMissingCuneifyService = errors.New("cuneify service is required")
