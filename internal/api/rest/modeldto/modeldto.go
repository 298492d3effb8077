// Package modeldto provides locally used types and their structure for data transfer objects.
package modeldto

type (
	// RequestSearch is the body of a search call. ID takes precedence over the filters and
	// IDs switches to bulk mode.
	RequestSearch struct {
		Keyword   string   `json:"keyword"`
		Genre     string   `json:"genre"`
		SmallArea string   `json:"small_area"`
		ID        string   `json:"id"`
		IDs       []string `json:"ids"`
	}

	RequestGroup struct {
		Name string `json:"name"`
	}

	RequestMemo struct {
		Content string `json:"content"`
	}

	ResponseError struct {
		Error   string `json:"error"`
		Details string `json:"details,omitempty"`
	}

	ResponseBackfill struct {
		Updated int `json:"updated"`
	}
)
