package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DecodeDeck parses a deck payload into question records. The extension of
// name selects the format: .json decodes as JSON, anything else as YAML.
// Records without an ID field are stamped with a fresh one so callers can
// track them across sessions. Decoding performs no schema validation; run
// ValidateQuestions on the result before using the records.
func DecodeDeck(data []byte, name string) ([]Question, error) {
	ext := strings.ToLower(filepath.Ext(name))
	var (
		questions []Question
		err       error
	)
	if ext == ".json" {
		questions, err = decodeJSONDeck(data)
	} else {
		questions, err = decodeYAMLDeck(data)
	}
	if err != nil {
		return nil, err
	}
	for _, q := range questions {
		// A null list element decodes to a nil record; leave it for
		// ValidateQuestions to reject with its position.
		if q == nil {
			continue
		}
		if _, ok := q[FieldID]; !ok {
			q[FieldID] = uuid.NewString()
		}
	}
	return questions, nil
}

func decodeJSONDeck(data []byte) ([]Question, error) {
	var questions []Question
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&questions); err != nil {
		// An empty payload is an empty deck; ValidateQuestions rejects it
		// with the deck-level message.
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse json deck: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json deck: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json deck: %w", err)
	}
	return questions, nil
}

func decodeYAMLDeck(data []byte) ([]Question, error) {
	var questions []Question
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&questions); err != nil {
		// An empty payload is an empty deck; ValidateQuestions rejects it
		// with the deck-level message.
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse yaml deck: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml deck: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml deck: %w", err)
	}
	return questions, nil
}
