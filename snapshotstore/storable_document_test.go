package snapshotstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BuildStorableDocument_ErrorCases(t *testing.T) {
	validPayloadJSON := []byte(`[{"name": "Alice"}]`)

	tests := []struct {
		name         string
		documentName string
		payloadJSON  []byte
		expectedErr  error
	}{
		{
			name:         "empty document name",
			documentName: "",
			payloadJSON:  validPayloadJSON,
			expectedErr:  ErrEmptyDocumentName,
		},
		{
			name:         "document name with path separator",
			documentName: "../books",
			payloadJSON:  validPayloadJSON,
			expectedErr:  ErrInvalidDocumentName,
		},
		{
			name:         "document name with extension",
			documentName: "books.json",
			payloadJSON:  validPayloadJSON,
			expectedErr:  ErrInvalidDocumentName,
		},
		{
			name:         "invalid payload JSON",
			documentName: "books",
			payloadJSON:  []byte(`[{"invalid": json}]`),
			expectedErr:  ErrInvalidPayloadJSON,
		},
		{
			name:         "empty payload JSON",
			documentName: "books",
			payloadJSON:  []byte(``),
			expectedErr:  ErrInvalidPayloadJSON,
		},
		{
			name:         "nil payload JSON",
			documentName: "books",
			payloadJSON:  nil,
			expectedErr:  ErrInvalidPayloadJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildStorableDocument(tt.documentName, tt.payloadJSON)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_BuildStorableDocument_Success(t *testing.T) {
	payloadJSON := []byte(`[]`)

	document, err := BuildStorableDocument("persons_v1", payloadJSON)

	assert.NoError(t, err)
	assert.Equal(t, "persons_v1", document.Name)
	assert.Equal(t, payloadJSON, document.PayloadJSON)
}
