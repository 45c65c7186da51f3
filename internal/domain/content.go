package domain

// SEO carries the per-page metadata block embedded in several content domains.
type SEO struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
}

type HomeContent struct {
	Brand BrandBlock `json:"brand"`
	Hero  HeroBlock  `json:"hero"`
	SEO   SEO        `json:"seo"`
}

type BrandBlock struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

type HeroBlock struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	ImageURL    string `json:"imageUrl"`
}

type AboutContent struct {
	Main     AboutMain     `json:"main"`
	Services AboutServices `json:"services"`
	SEO      SEO           `json:"seo"`
}

type AboutMain struct {
	Title      string `json:"title"`
	Paragraph1 string `json:"paragraph1"`
	Paragraph2 string `json:"paragraph2"`
	ImageURL   string `json:"imageUrl"`
}

type AboutServices struct {
	Title string        `json:"title"`
	Items []ServiceItem `json:"items"`
}

type ServiceItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type GalleryContent struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Images      []GalleryImage `json:"images"`
}

type GalleryImage struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Hint        string `json:"hint"`
	ImageURL    string `json:"imageUrl"`
}

type ContactInfo struct {
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	WhatsApp    string `json:"whatsapp"`
	MapImageURL string `json:"mapImageUrl,omitempty"`
	MapHint     string `json:"mapHint,omitempty"`
}

// SectionText is the title/description pair used by the per-section copy
// domains (products-section, certificates-section, testimonials-section,
// contact-section).
type SectionText struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TermsContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
