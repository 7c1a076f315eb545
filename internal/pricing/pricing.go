// Package pricing estimates the monetary cost of generation calls from
// token counts and image counts using fixed provider rates.
package pricing

// Per-unit rates. Text rates are per million tokens.
const (
	InputRatePerMillion  = 0.30
	OutputRatePerMillion = 2.50
	RatePerImage         = 0.039
)

// Estimate returns the estimated cost of a call. Pure, never fails,
// Estimate(0, 0, 0) == 0.
func Estimate(inputTokens, outputTokens, imageCount int) float64 {
	return float64(inputTokens)/1_000_000*InputRatePerMillion +
		float64(outputTokens)/1_000_000*OutputRatePerMillion +
		float64(imageCount)*RatePerImage
}

// Amortize splits a batched call's token usage evenly across the k sibling
// nodes it produced. This is an approximation, not a measured per-node
// cost: the prompt was shared and the output interleaved, so an even split
// is the best attribution available.
func Amortize(tokens, k int) int {
	if k <= 0 {
		return tokens
	}
	return tokens / k
}
