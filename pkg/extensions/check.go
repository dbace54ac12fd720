package extensions

import (
	"context"

	"github.com/agentstation/extcheck/pkg/errors"
	"github.com/agentstation/extcheck/pkg/logging"
)

// Check loads both documents named by src and compares them.
// The first load failure is returned unchanged.
func Check(ctx context.Context, src Sources) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, errors.ErrCanceled
	}
	logger := logging.FromContext(ctx)

	containerDoc, err := LoadDocument(src.Devcontainer)
	if err != nil {
		return Result{}, err
	}
	recommendationsDoc, err := LoadDocument(src.Recommendations)
	if err != nil {
		return Result{}, err
	}

	container := ContainerExtensions(containerDoc)
	recommended := RecommendedExtensions(recommendationsDoc)
	logger.Debug().
		Str("devcontainer", src.Devcontainer).
		Int("container_extensions", container.Len()).
		Str("recommendations", src.Recommendations).
		Int("recommended_extensions", recommended.Len()).
		Msg("Loaded extension sets")

	result := CompareSets(container, recommended)
	logger.Debug().
		Int("missing_from_container", len(result.MissingFromContainer)).
		Int("missing_from_recommendations", len(result.MissingFromRecommendations)).
		Bool("in_sync", result.InSync()).
		Msg("Compared extension sets")
	return result, nil
}
