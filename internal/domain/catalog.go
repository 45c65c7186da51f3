package domain

import "strings"

// Product is one entry in the products list domain. Identity is ID; the
// display slug is derived from the name and is not guaranteed unique.
type Product struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	ImageURL       string     `json:"imageUrl"`
	Specifications []SpecPair `json:"specifications"`
	Varieties      []string   `json:"varieties"`
	Certifications []string   `json:"certifications"`
	SEO            SEO        `json:"seo"`
}

type SpecPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Slug lowercases the product name and replaces spaces with hyphens.
func (p Product) Slug() string {
	return strings.ReplaceAll(strings.ToLower(p.Name), " ", "-")
}

type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"` // 1..5
	ImageURL string `json:"imageUrl"`
}

type Certificate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Issuer   string `json:"issuer"`
	Date     string `json:"date"`
	ImageURL string `json:"imageUrl"`
}

type Partner struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}
