package hujsonx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnmarshal(t *testing.T) {
	type document struct {
		Name  string `json:"name"`
		Value int64  `json:"value"`
	}

	t.Run("with comments and trailing commas", func(t *testing.T) {
		input := []byte(`{
			// the name
			"name": "antani",
			"value": 17, /* trailing comma */
		}`)
		var doc document
		if err := Unmarshal(input, &doc); err != nil {
			t.Fatal(err)
		}
		expect := document{Name: "antani", Value: 17}
		if diff := cmp.Diff(expect, doc); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with invalid input", func(t *testing.T) {
		var doc document
		if err := Unmarshal([]byte(`{`), &doc); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("with a type mismatch", func(t *testing.T) {
		var doc document
		if err := Unmarshal([]byte(`{"value": "x"}`), &doc); err == nil {
			t.Fatal("expected an error")
		}
	})
}
