package http

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/blugnu/http/v2/header"
	"github.com/blugnu/test"
)

type unmarshallable struct{}

func (unmarshallable) MarshalJSON() ([]byte, error) {
	return nil, errors.New("unmarshallable")
}

func TestMockResponse(t *testing.T) {
	// ARRANGE
	testcases := []struct {
		scenario string
		exec     func(*testing.T)
	}{
		{scenario: "WithBody",
			exec: func(t *testing.T) {
				// ARRANGE
				response := &mockResponse{}

				// ACT
				result := response.WithBody([]byte("foo"))

				// ASSERT
				test.That(t, response.body).Equals([]byte("foo"))
				test.IsTrue(t, result == response)
			},
		},
		{scenario: "WithHeader",
			exec: func(t *testing.T) {
				// ARRANGE
				response := &mockResponse{}

				// ACT
				result := response.WithHeader("content-type", "application/json")

				// ASSERT
				test.That(t, response.headers).Equals(http.Header{"Content-Type": []string{"application/json"}})
				test.IsTrue(t, result == response)
			},
		},
		{scenario: "WithHeader/multiple values",
			exec: func(t *testing.T) {
				// ARRANGE
				response := &mockResponse{}
				vary := header.NewValues(header.MustParseValue("Accept"), header.MustParseValue("Accept-Encoding"))

				// ACT
				response.WithHeader("vary", vary).
					WithHeader("vary", header.Text("Origin"))

				// ASSERT
				test.That(t, response.headers).Equals(http.Header{"Vary": []string{"Accept", "Accept-Encoding", "Origin"}})
				test.That(t, response.statusCode).IsNil()
			},
		},
		{scenario: "WithHeader/invalid value",
			exec: func(t *testing.T) {
				// ARRANGE
				response := &mockResponse{}

				// ACT
				result := response.WithHeader("location", []byte("/path\r\nX-Injected: 1"))

				// ASSERT
				_, ok := response.headers["Location"]
				test.Bool(t, ok).IsFalse()
				test.Error(t, response.invalid).Is(header.ErrInvalidValue)
				test.IsTrue(t, strings.HasPrefix(response.invalid.Error(), "MockResponse: WithHeader: Location: "), response.invalid.Error())
				test.IsTrue(t, result == response)
			},
		},
		{scenario: "WithJSON/int",
			exec: func(t *testing.T) {
				// ARRANGE
				response := &mockResponse{}

				// ACT
				result := response.WithJSON(42)

				// ASSERT
				test.That(t, response.body).Equals([]byte("42"))
				test.Slice(t, response.headers["Content-Type"]).Equals([]string{"application/json"})
				test.IsTrue(t, result == response)
			},
		},
		{scenario: "WithJSON/string",
			exec: func(t *testing.T) {
				// ARRANGE
				response := &mockResponse{}

				// ACT
				result := response.WithJSON("string value")

				// ASSERT
				test.That(t, response.body).Equals([]byte(`"string value"`))
				test.IsTrue(t, result == response)
			},
		},
		{scenario: "WithJSON/map",
			exec: func(t *testing.T) {
				// ARRANGE
				response := &mockResponse{}

				// ACT
				result := response.WithJSON(map[string]string{"key": "value"})

				// ASSERT
				test.That(t, response.body).Equals([]byte(`{"key":"value"}`))
				test.IsTrue(t, result == response)
			},
		},
		{scenario: "WithJSON/slice",
			exec: func(t *testing.T) {
				// ARRANGE
				response := &mockResponse{}

				// ACT
				result := response.WithJSON([]int{1, 2, 3})

				// ASSERT
				test.That(t, response.body).Equals([]byte(`[1,2,3]`))
				test.IsTrue(t, result == response)
			},
		},
		{scenario: "WithJSON/unmarshallable",
			exec: func(t *testing.T) {
				// ARRANGE
				response := &mockResponse{}

				// ACT
				result := response.WithJSON(unmarshallable{})

				// ASSERT
				test.That(t, response.invalid.Error()).Equals("MockResponse: WithJSON: json: error calling MarshalJSON for type http.unmarshallable: unmarshallable")
				test.IsTrue(t, response.body == nil, "no body expected")
				test.IsTrue(t, result == response)
			},
		},
		{scenario: "WithNonCanonicalHeader",
			exec: func(t *testing.T) {
				// ARRANGE
				response := &mockResponse{}

				// ACT
				result := response.WithNonCanonicalHeader("sessionid", "5f6903df-c6e9-4cf6-a95b-fafd76fee730")

				// ASSERT
				test.That(t, response.headers).Equals(http.Header{"sessionid": []string{"5f6903df-c6e9-4cf6-a95b-fafd76fee730"}})
				test.IsTrue(t, result == response)
			},
		},
		{scenario: "WithStatusCode",
			exec: func(t *testing.T) {
				// ARRANGE
				response := &mockResponse{}
				sc := http.StatusInternalServerError

				// ACT
				result := response.WithStatusCode(sc)

				// ASSERT
				test.That(t, *response.statusCode).Equals(sc)
				test.IsTrue(t, result == response)
			},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.scenario, func(t *testing.T) {
			tc.exec(t)
		})
	}
}
