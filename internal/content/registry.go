package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"

	"sbsoverseas/internal/domain"
)

// Domain names. One mutable JSON document per domain; the list domains hold
// arrays of identifiable items, everything else is a single object.
const (
	DomainHome                = "home"
	DomainAbout               = "about"
	DomainGallery             = "gallery"
	DomainContactInfo         = "contact-info"
	DomainContactSection      = "contact-section"
	DomainProductsSection     = "products-section"
	DomainCertificatesSection = "certificates-section"
	DomainTestimonialsSection = "testimonials-section"
	DomainSEO                 = "seo"
	DomainTerms               = "terms"

	DomainProducts     = "products"
	DomainCertificates = "certificates"
	DomainPartners     = "partners"
	DomainTestimonials = "testimonials"
	DomainSocialLinks  = "social-links"
)

var ErrUnknownDomain = errors.New("unknown content domain")

type domainSpec struct {
	decode   func([]byte) (any, error)
	defProto func() any
	list     bool
}

func decodeInto[T any](b []byte) (any, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after document")
	}
	return v, nil
}

var registry = map[string]domainSpec{
	DomainHome:                {decode: decodeInto[domain.HomeContent], defProto: DefaultHome},
	DomainAbout:               {decode: decodeInto[domain.AboutContent], defProto: DefaultAbout},
	DomainGallery:             {decode: decodeInto[domain.GalleryContent], defProto: DefaultGallery},
	DomainContactInfo:         {decode: decodeInto[domain.ContactInfo], defProto: DefaultContactInfo},
	DomainContactSection:      {decode: decodeInto[domain.SectionText], defProto: DefaultSection},
	DomainProductsSection:     {decode: decodeInto[domain.SectionText], defProto: DefaultSection},
	DomainCertificatesSection: {decode: decodeInto[domain.SectionText], defProto: DefaultSection},
	DomainTestimonialsSection: {decode: decodeInto[domain.SectionText], defProto: DefaultSection},
	DomainSEO:                 {decode: decodeInto[domain.SEO], defProto: DefaultSEO},
	DomainTerms:               {decode: decodeInto[domain.TermsContent], defProto: DefaultTerms},

	DomainProducts:     {decode: decodeInto[[]domain.Product], defProto: DefaultProducts, list: true},
	DomainCertificates: {decode: decodeInto[[]domain.Certificate], defProto: DefaultCertificates, list: true},
	DomainPartners:     {decode: decodeInto[[]domain.Partner], defProto: DefaultPartners, list: true},
	DomainTestimonials: {decode: decodeInto[[]domain.Testimonial], defProto: DefaultTestimonials, list: true},
	DomainSocialLinks:  {decode: decodeInto[[]domain.SocialLink], defProto: DefaultSocialLinks, list: true},
}

// Known reports whether name is a registered content domain.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// IsList reports whether the domain's document is an array of items.
func IsList(name string) bool {
	return registry[name].list
}

// Domains returns all registered domain names, sorted.
func Domains() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Decode parses body into the domain's typed document, rejecting unknown
// fields, so malformed admin payloads never reach the store.
func Decode(name string, body []byte) (any, error) {
	spec, ok := registry[name]
	if !ok {
		return nil, ErrUnknownDomain
	}
	return spec.decode(body)
}

// Default returns the bundled fallback document for the domain.
func Default(name string) (any, error) {
	spec, ok := registry[name]
	if !ok {
		return nil, ErrUnknownDomain
	}
	return spec.defProto(), nil
}
