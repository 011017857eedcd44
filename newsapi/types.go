package newsapi

// Source is a news outlet registered with the API. Only ID and Name are
// required by the listing commands; the rest is decoded when present.
type Source struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Category    string `json:"category,omitempty"`
	Language    string `json:"language,omitempty"`
	Country     string `json:"country,omitempty"`
}

// Article is a single headline of a source. A JSON null description decodes
// to the empty string.
type Article struct {
	Author      string `json:"author,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// envelope is the status block every API response carries.
type envelope struct {
	Status  string `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e *envelope) apiError() *APIError {
	if e.Status != "error" {
		return nil
	}
	return &APIError{Code: e.Code, Message: e.Message}
}

type sourcesResponse struct {
	envelope
	Sources []Source `json:"sources"`
}

type articlesResponse struct {
	envelope
	Source   string    `json:"source,omitempty"`
	SortBy   string    `json:"sortBy,omitempty"`
	Articles []Article `json:"articles"`
}

// apiResponse is implemented by every decoded response body.
type apiResponse interface {
	apiError() *APIError
}
