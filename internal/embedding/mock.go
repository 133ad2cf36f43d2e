package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
)

const mockDimensions = 1536

// MockClient produces deterministic embeddings derived from the input text.
// Useful for local development and tests where no API key is available.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (c *MockClient) Provider() string { return ProviderMock }

func (c *MockClient) Model() string { return "sha256-1536" }

func (c *MockClient) Embed(_ context.Context, text string) ([]float32, error) {
	sum := sha256.Sum256([]byte(text))

	vec := make([]float32, mockDimensions)
	for i := range vec {
		word := binary.BigEndian.Uint32(sum[(i*4)%28 : (i*4)%28+4])
		// Mix the index in so the vector is not 7-periodic.
		word = word*2654435761 + uint32(i)
		vec[i] = float32(word%2000)/1000.0 - 1.0
	}
	return vec, nil
}
