package chart

import (
	"github.com/pkg/errors"

	"github.com/taigrr/plot3d/pkg/dataset"
)

var (
	// ErrInvalidData is returned when a dataset cannot be turned into a
	// chart. It is the same error the dataset loaders return.
	ErrInvalidData = dataset.ErrInvalidData

	// ErrNoGeometry is returned when painting is requested before any data
	// was loaded.
	ErrNoGeometry = errors.New("graph data not initialized")

	// ErrNoFilter is returned by filter and animation operations when the
	// dataset has no filter column.
	ErrNoFilter = errors.New("no filter data available")

	// ErrUnknownStyle is returned for unrecognized style names.
	ErrUnknownStyle = errors.New("unknown style")
)
