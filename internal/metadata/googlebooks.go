// Package metadata fetches book metadata from the Google Books API for
// search-assisted data entry. It never touches the catalog database.
package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrUpstream marks failures reaching the Google Books API (network errors
// and non-2xx responses). Handlers attach the upstream detail to the response.
var ErrUpstream = errors.New("google books request failed")

// VolumeHint is a Book-shaped projection of a Google Books volume, used to
// pre-fill the add-book form.
type VolumeHint struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Author        string   `json:"author"`
	PublishedDate string   `json:"publishedDate"`
	Year          *int     `json:"year"`
	Description   string   `json:"description"`
	Categories    []string `json:"categories"`
	Genre         string   `json:"genre"`
	PageCount     int      `json:"pageCount"`
	Language      string   `json:"language"`
	Thumbnail     string   `json:"thumbnail"`
	Publisher     string   `json:"publisher"`
	ISBN          *string  `json:"isbn"`
}

// SearchResult is the reshaped response returned to the browser.
type SearchResult struct {
	Success    bool         `json:"success"`
	TotalItems int          `json:"totalItems"`
	Books      []VolumeHint `json:"books"`
}

// GoogleBooksClient queries the Google Books volumes API.
type GoogleBooksClient struct {
	httpClient *http.Client
	baseURL    string
	maxResults int
}

// NewGoogleBooksClient creates a client with the given base URL, request
// timeout and result cap.
func NewGoogleBooksClient(baseURL string, timeout time.Duration, maxResults int) *GoogleBooksClient {
	return &GoogleBooksClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		maxResults: maxResults,
	}
}

// Search runs a free-text volume search and reshapes each result into a
// VolumeHint.
func (c *GoogleBooksClient) Search(ctx context.Context, query string) (*SearchResult, error) {
	searchURL := fmt.Sprintf("%s/volumes?q=%s&maxResults=%d", c.baseURL, url.QueryEscape(query), c.maxResults)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Bookshelf/1.0 (https://github.com/mrlokans/bookshelf)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	var volumes volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&volumes); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	result := &SearchResult{
		Success:    true,
		TotalItems: volumes.TotalItems,
		Books:      make([]VolumeHint, 0, len(volumes.Items)),
	}
	for _, item := range volumes.Items {
		result.Books = append(result.Books, convertVolume(item.VolumeInfo))
	}

	return result, nil
}

func convertVolume(info volumeInfo) VolumeHint {
	authors := info.Authors
	if authors == nil {
		authors = []string{}
	}
	categories := info.Categories
	if categories == nil {
		categories = []string{}
	}

	hint := VolumeHint{
		Title:         info.Title,
		Authors:       authors,
		Author:        strings.Join(authors, ", "),
		PublishedDate: info.PublishedDate,
		Year:          extractYear(info.PublishedDate),
		Description:   info.Description,
		Categories:    categories,
		Genre:         strings.Join(categories, ", "),
		PageCount:     info.PageCount,
		Language:      info.Language,
		Thumbnail:     info.ImageLinks.Thumbnail,
		Publisher:     info.Publisher,
		ISBN:          extractISBN(info.IndustryIdentifiers),
	}
	return hint
}

// extractYear parses the leading component of a published date
// (YYYY, YYYY-MM or YYYY-MM-DD). Anything but exactly four digits yields nil.
func extractYear(publishedDate string) *int {
	if publishedDate == "" {
		return nil
	}
	leading, _, _ := strings.Cut(publishedDate, "-")
	if len(leading) != 4 {
		return nil
	}
	for i := 0; i < len(leading); i++ {
		if leading[i] < '0' || leading[i] > '9' {
			return nil
		}
	}
	year, _ := strconv.Atoi(leading)
	return &year
}

// extractISBN scans the identifier list for the first ISBN_13 or ISBN_10
// entry. First match in list order wins.
func extractISBN(identifiers []industryIdentifier) *string {
	for _, identifier := range identifiers {
		if identifier.Type == "ISBN_13" || identifier.Type == "ISBN_10" {
			isbn := identifier.Identifier
			return &isbn
		}
	}
	return nil
}

// Google Books API response types (internal)

type volumesResponse struct {
	TotalItems int          `json:"totalItems"`
	Items      []volumeItem `json:"items"`
}

type volumeItem struct {
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title               string               `json:"title"`
	Authors             []string             `json:"authors"`
	Publisher           string               `json:"publisher"`
	PublishedDate       string               `json:"publishedDate"`
	Description         string               `json:"description"`
	Categories          []string             `json:"categories"`
	PageCount           int                  `json:"pageCount"`
	Language            string               `json:"language"`
	ImageLinks          imageLinks           `json:"imageLinks"`
	IndustryIdentifiers []industryIdentifier `json:"industryIdentifiers"`
}

type imageLinks struct {
	Thumbnail string `json:"thumbnail"`
}

type industryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}
