package embedding

import (
	"context"
	"hash/fnv"
	"math"
)

// MockClient produces deterministic pseudo-embeddings from a text hash.
// The same text always maps to the same unit vector, which is enough for
// exercising vector plumbing without a real model.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (c *MockClient) Embed(_ context.Context, text string) ([]float32, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	seed := h.Sum64()

	vec := make([]float32, DefaultDimensions)
	var norm float64
	for i := range vec {
		// xorshift over the seed gives a stable pseudo-random sequence
		seed ^= seed << 13
		seed ^= seed >> 7
		seed ^= seed << 17
		v := float64(int64(seed%2000)-1000) / 1000
		vec[i] = float32(v)
		norm += v * v
	}

	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] = float32(float64(vec[i]) / norm)
		}
	}
	return vec, nil
}
