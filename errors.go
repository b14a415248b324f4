package mapper

import (
	"errors"
	"fmt"

	"github.com/hupe1980/mappergo/cluster"
	"github.com/hupe1980/mappergo/cover"
	"github.com/hupe1980/mappergo/distance"
)

// ConfigurationError indicates malformed or contradictory pipeline inputs.
// It is raised before any cover or cluster computation begins.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ConfigurationError struct {
	Field  string
	Reason string
	cause  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.cause }

func configErr(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}

func configErrf(field string, cause error, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...), cause: cause}
}

// ClusteringContractError indicates a clustering strategy that returned a
// non-partition or failed internally. The whole pipeline run is aborted; no
// partial graph is returned.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ClusteringContractError struct {
	Cell   string
	Reason string
	cause  error
}

func (e *ClusteringContractError) Error() string {
	return fmt.Sprintf("clustering contract violated in cell %s: %s", e.Cell, e.Reason)
}

func (e *ClusteringContractError) Unwrap() error { return e.cause }

// translateError normalizes subpackage errors into the public taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, cover.ErrInvalidIntervals):
		return configErrf("num_intervals", err, "%v", err)
	case errors.Is(err, cover.ErrInvalidOverlap):
		return configErrf("percent_overlap", err, "%v", err)
	case errors.Is(err, cover.ErrDimensionMismatch):
		return configErrf("filter", err, "%v", err)
	case errors.Is(err, cover.ErrNoPoints), errors.Is(err, cover.ErrRaggedFilter):
		return configErrf("filter", err, "%v", err)
	case errors.Is(err, distance.ErrEmptyInput),
		errors.Is(err, distance.ErrNotSquare),
		errors.Is(err, distance.ErrNotSymmetric),
		errors.Is(err, distance.ErrNonZeroDiagonal):
		return configErrf("distance_matrix", err, "%v", err)
	case errors.Is(err, distance.ErrRaggedCoordinates):
		return configErrf("coordinates", err, "%v", err)
	case errors.Is(err, cluster.ErrInvalidBins):
		return configErrf("num_bins_when_clustering", err, "%v", err)
	case errors.Is(err, cluster.ErrUnknownStrategy):
		return configErrf("clusterer", err, "%v", err)
	}

	return err
}
