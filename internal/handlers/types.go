package handlers

// CreateLinkRequest is the request for minting (or re-fetching) a short link.
type CreateLinkRequest struct {
	Slug   string `doc:"Article slug to link to" example:"arrest-of-jafer-sadeqi" query:"slug"   required:"true"`
	Locale string `doc:"Locale of the link"      example:"fa"                     query:"locale"`
}

// CreateLinkResponse is the response for a successfully created short link.
type CreateLinkResponse struct {
	Body struct {
		Code     string `doc:"The short code"     example:"x7Kd2a"                         json:"code"`
		ShortURL string `doc:"The full short URL" example:"https://dengnews.net/s/x7Kd2a" json:"shortUrl"`
	}
}

// ResolveLinkRequest is the request for resolving a code back to its target.
type ResolveLinkRequest struct {
	Code string `doc:"The short code" example:"x7Kd2a" query:"code" required:"true"`
}

// ResolveLinkResponse carries the target of a short code.
type ResolveLinkResponse struct {
	Body struct {
		Slug   string `doc:"Target article slug" example:"arrest-of-jafer-sadeqi" json:"slug"`
		Locale string `doc:"Target locale"       example:"fa"                     json:"locale"`
	}
}

// RedirectRequest is the request for following a short link.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"x7Kd2a" path:"code"`
}

// RedirectResponse redirects the reader to the canonical content path.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The content path" header:"Location"`
	}
}
