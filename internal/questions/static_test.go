package questions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRotation(t *testing.T) {
	source := NewStatic(
		GenerateOutput{Question: "Q1", Answer: "A1"},
		GenerateOutput{Question: "Q2", Answer: "A2"},
	)

	first, err := source.Generate(context.Background(), &GenerateInput{})
	require.NoError(t, err)
	second, err := source.Generate(context.Background(), &GenerateInput{})
	require.NoError(t, err)
	third, err := source.Generate(context.Background(), &GenerateInput{})
	require.NoError(t, err)

	assert.Equal(t, "Q1", first.Question)
	assert.Equal(t, "Q2", second.Question)
	assert.Equal(t, "Q1", third.Question)
}

func TestStaticDefaults(t *testing.T) {
	source := NewStatic()

	out, err := source.Generate(context.Background(), &GenerateInput{})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Question)
	assert.NotEmpty(t, out.Answer)
}

type failingSource struct{}

func (failingSource) Generate(context.Context, *GenerateInput) (*GenerateOutput, error) {
	return nil, errors.New("boom")
}

func TestFallbackUsesPrimary(t *testing.T) {
	primary := NewStatic(GenerateOutput{Question: "primary", Answer: "a"})
	secondary := NewStatic(GenerateOutput{Question: "secondary", Answer: "b"})

	source, err := NewFallback(primary, secondary)
	require.NoError(t, err)

	out, err := source.Generate(context.Background(), &GenerateInput{})
	require.NoError(t, err)
	assert.Equal(t, "primary", out.Question)
}

func TestFallbackOnPrimaryFailure(t *testing.T) {
	secondary := NewStatic(GenerateOutput{Question: "secondary", Answer: "b"})

	source, err := NewFallback(failingSource{}, secondary)
	require.NoError(t, err)

	out, err := source.Generate(context.Background(), &GenerateInput{})
	require.NoError(t, err)
	assert.Equal(t, "secondary", out.Question)
}
