// Package client provides the per-domain content access functions used by
// admin tooling and the site frontend. Reads fall back to the bundled
// defaults on any transport or server failure and never return an error;
// writes post the whole document. List saves are read-modify-write with no
// concurrency control: two racing writers based on a stale read can lose one
// of the two writes (last write wins).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sbsoverseas/internal/content"
	"sbsoverseas/internal/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient lets callers supply their own http.Client (cookies for
// the admin session, custom transports in tests).
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), http: hc}
}

// getDoc fetches a domain document, falling back to the bundled default.
func getDoc[T any](ctx context.Context, c *Client, name string) T {
	fallback := bundled[T](name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/content/"+name, nil)
	if err != nil {
		return fallback
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fallback
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fallback
	}
	var doc T
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fallback
	}
	return doc
}

func bundled[T any](name string) T {
	def, err := content.Default(name)
	if err != nil {
		var zero T
		return zero
	}
	return def.(T)
}

// save posts the whole document. No retry; the caller keeps its own
// optimistic view.
func (c *Client) save(ctx context.Context, name string, doc any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/content/"+name, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("save %s: server returned %s", name, resp.Status)
	}
	return nil
}

// saveItem is the list-domain read-modify-write: replace by id or append,
// then write the whole list back.
func saveItem[T any](ctx context.Context, c *Client, name string, item T, idOf func(T) string) error {
	list := getDoc[[]T](ctx, c, name)
	replaced := false
	for i := range list {
		if idOf(list[i]) == idOf(item) {
			list[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, item)
	}
	return c.save(ctx, name, list)
}

func deleteItem[T any](ctx context.Context, c *Client, name, id string, idOf func(T) string) error {
	list := getDoc[[]T](ctx, c, name)
	kept := list[:0]
	for _, it := range list {
		if idOf(it) != id {
			kept = append(kept, it)
		}
	}
	return c.save(ctx, name, kept)
}

// ---------- Scalar domains ----------

func (c *Client) Home(ctx context.Context) domain.HomeContent {
	return getDoc[domain.HomeContent](ctx, c, content.DomainHome)
}
func (c *Client) SaveHome(ctx context.Context, doc domain.HomeContent) error {
	return c.save(ctx, content.DomainHome, doc)
}

func (c *Client) About(ctx context.Context) domain.AboutContent {
	return getDoc[domain.AboutContent](ctx, c, content.DomainAbout)
}
func (c *Client) SaveAbout(ctx context.Context, doc domain.AboutContent) error {
	return c.save(ctx, content.DomainAbout, doc)
}

func (c *Client) Gallery(ctx context.Context) domain.GalleryContent {
	return getDoc[domain.GalleryContent](ctx, c, content.DomainGallery)
}
func (c *Client) SaveGallery(ctx context.Context, doc domain.GalleryContent) error {
	return c.save(ctx, content.DomainGallery, doc)
}

func (c *Client) ContactInfo(ctx context.Context) domain.ContactInfo {
	return getDoc[domain.ContactInfo](ctx, c, content.DomainContactInfo)
}
func (c *Client) SaveContactInfo(ctx context.Context, doc domain.ContactInfo) error {
	return c.save(ctx, content.DomainContactInfo, doc)
}

func (c *Client) ContactSection(ctx context.Context) domain.SectionText {
	return getDoc[domain.SectionText](ctx, c, content.DomainContactSection)
}
func (c *Client) SaveContactSection(ctx context.Context, doc domain.SectionText) error {
	return c.save(ctx, content.DomainContactSection, doc)
}

func (c *Client) ProductsSection(ctx context.Context) domain.SectionText {
	return getDoc[domain.SectionText](ctx, c, content.DomainProductsSection)
}
func (c *Client) SaveProductsSection(ctx context.Context, doc domain.SectionText) error {
	return c.save(ctx, content.DomainProductsSection, doc)
}

func (c *Client) CertificatesSection(ctx context.Context) domain.SectionText {
	return getDoc[domain.SectionText](ctx, c, content.DomainCertificatesSection)
}
func (c *Client) SaveCertificatesSection(ctx context.Context, doc domain.SectionText) error {
	return c.save(ctx, content.DomainCertificatesSection, doc)
}

func (c *Client) TestimonialsSection(ctx context.Context) domain.SectionText {
	return getDoc[domain.SectionText](ctx, c, content.DomainTestimonialsSection)
}
func (c *Client) SaveTestimonialsSection(ctx context.Context, doc domain.SectionText) error {
	return c.save(ctx, content.DomainTestimonialsSection, doc)
}

func (c *Client) SEO(ctx context.Context) domain.SEO {
	return getDoc[domain.SEO](ctx, c, content.DomainSEO)
}
func (c *Client) SaveSEO(ctx context.Context, doc domain.SEO) error {
	return c.save(ctx, content.DomainSEO, doc)
}

func (c *Client) Terms(ctx context.Context) domain.TermsContent {
	return getDoc[domain.TermsContent](ctx, c, content.DomainTerms)
}
func (c *Client) SaveTerms(ctx context.Context, doc domain.TermsContent) error {
	return c.save(ctx, content.DomainTerms, doc)
}

// ---------- List domains ----------

func (c *Client) Products(ctx context.Context) []domain.Product {
	return getDoc[[]domain.Product](ctx, c, content.DomainProducts)
}
func (c *Client) SaveProduct(ctx context.Context, p domain.Product) error {
	return saveItem(ctx, c, content.DomainProducts, p, func(v domain.Product) string { return v.ID })
}
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return deleteItem(ctx, c, content.DomainProducts, id, func(v domain.Product) string { return v.ID })
}

func (c *Client) Certificates(ctx context.Context) []domain.Certificate {
	return getDoc[[]domain.Certificate](ctx, c, content.DomainCertificates)
}
func (c *Client) SaveCertificate(ctx context.Context, crt domain.Certificate) error {
	return saveItem(ctx, c, content.DomainCertificates, crt, func(v domain.Certificate) string { return v.ID })
}
func (c *Client) DeleteCertificate(ctx context.Context, id string) error {
	return deleteItem(ctx, c, content.DomainCertificates, id, func(v domain.Certificate) string { return v.ID })
}

func (c *Client) Partners(ctx context.Context) []domain.Partner {
	return getDoc[[]domain.Partner](ctx, c, content.DomainPartners)
}
func (c *Client) SavePartner(ctx context.Context, p domain.Partner) error {
	return saveItem(ctx, c, content.DomainPartners, p, func(v domain.Partner) string { return v.ID })
}
func (c *Client) DeletePartner(ctx context.Context, id string) error {
	return deleteItem(ctx, c, content.DomainPartners, id, func(v domain.Partner) string { return v.ID })
}

func (c *Client) Testimonials(ctx context.Context) []domain.Testimonial {
	return getDoc[[]domain.Testimonial](ctx, c, content.DomainTestimonials)
}
func (c *Client) SaveTestimonial(ctx context.Context, t domain.Testimonial) error {
	return saveItem(ctx, c, content.DomainTestimonials, t, func(v domain.Testimonial) string { return v.ID })
}
func (c *Client) DeleteTestimonial(ctx context.Context, id string) error {
	return deleteItem(ctx, c, content.DomainTestimonials, id, func(v domain.Testimonial) string { return v.ID })
}

func (c *Client) SocialLinks(ctx context.Context) []domain.SocialLink {
	return getDoc[[]domain.SocialLink](ctx, c, content.DomainSocialLinks)
}
func (c *Client) SaveSocialLink(ctx context.Context, l domain.SocialLink) error {
	return saveItem(ctx, c, content.DomainSocialLinks, l, func(v domain.SocialLink) string { return v.ID })
}
func (c *Client) DeleteSocialLink(ctx context.Context, id string) error {
	return deleteItem(ctx, c, content.DomainSocialLinks, id, func(v domain.SocialLink) string { return v.ID })
}
