// Package mocks provides shared mock implementations for tests.
//
// Each mock carries one function field per interface method. A nil field
// falls back to a fixed default, so tests only set what they exercise:
//
//	model := &mocks.MockModel{
//	    GenerateContentFn: func(ctx context.Context, prompt string, opts generation.GenerateOptions) (string, error) {
//	        return "# Docs", nil
//	    },
//	}
//
// Mocks that sit behind the dispatcher record their calls so that tests can
// assert on the prompts sent and the API keys used.
package mocks
