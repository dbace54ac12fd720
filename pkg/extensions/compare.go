package extensions

import "github.com/agentstation/extcheck/pkg/constants"

// Result is the outcome of comparing the two extension sets.
// Both lists are sorted ascending and never nil.
type Result struct {
	// MissingFromContainer holds recommended extensions absent from devcontainer.json.
	MissingFromContainer []string `json:"missing_from_container" yaml:"missing_from_container"`
	// MissingFromRecommendations holds container extensions absent from extensions.json.
	MissingFromRecommendations []string `json:"missing_from_recommendations" yaml:"missing_from_recommendations"`
}

// InSync reports whether the two sets were identical.
func (r Result) InSync() bool {
	return len(r.MissingFromContainer) == 0 && len(r.MissingFromRecommendations) == 0
}

// ContainerExtensions returns the set at customizations.vscode.extensions.
func ContainerExtensions(doc any) Set[string] {
	return NewSet(Strings(doc, constants.ContainerExtensionsPath...)...)
}

// RecommendedExtensions returns the set at the top-level recommendations key.
func RecommendedExtensions(doc any) Set[string] {
	return NewSet(Strings(doc, constants.RecommendationsPath...)...)
}

// Compare computes both one-sided differences between the devcontainer
// document and the recommendations document.
func Compare(containerDoc, recommendationsDoc any) Result {
	return CompareSets(ContainerExtensions(containerDoc), RecommendedExtensions(recommendationsDoc))
}

// CompareSets is Compare on already extracted sets.
func CompareSets(container, recommended Set[string]) Result {
	return Result{
		MissingFromContainer:       Sorted(recommended.Diff(container)),
		MissingFromRecommendations: Sorted(container.Diff(recommended)),
	}
}
