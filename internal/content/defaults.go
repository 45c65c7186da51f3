package content

import "sbsoverseas/internal/domain"

// Bundled defaults. These are the structural fallback documents served when
// a domain's file is absent or unreadable, and the same documents the API
// client falls back to when the server cannot be reached. Slices are
// non-nil so they encode as [] rather than null.

func DefaultHome() any {
	return domain.HomeContent{}
}

func DefaultAbout() any {
	return domain.AboutContent{
		Services: domain.AboutServices{Items: []domain.ServiceItem{}},
	}
}

func DefaultGallery() any {
	return domain.GalleryContent{Images: []domain.GalleryImage{}}
}

func DefaultContactInfo() any {
	return domain.ContactInfo{}
}

func DefaultSection() any {
	return domain.SectionText{}
}

func DefaultSEO() any {
	return domain.SEO{}
}

func DefaultTerms() any {
	return domain.TermsContent{}
}

func DefaultProducts() any {
	return []domain.Product{}
}

func DefaultCertificates() any {
	return []domain.Certificate{}
}

func DefaultPartners() any {
	return []domain.Partner{}
}

func DefaultTestimonials() any {
	return []domain.Testimonial{}
}

func DefaultSocialLinks() any {
	return []domain.SocialLink{}
}
