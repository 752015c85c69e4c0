package model

import "unicode/utf8"

const (
	// ShopURLKey is the environment variable holding the shop URL.
	ShopURLKey = "SHOPIFY_SHOP_URL"
	// AccessTokenKey is the environment variable holding the Admin API token.
	AccessTokenKey = "SHOPIFY_ACCESS_TOKEN"

	// tokenPrefixLength is the number of token characters shown once both
	// credentials are present.
	tokenPrefixLength = 10
)

// ShopifyCredentials represents the Shopify credentials read from the
// environment. An empty field means the variable is not set.
type ShopifyCredentials struct {
	ShopURL     string
	AccessToken string
}

// NewShopifyCredentials creates new Shopify credentials using the given lookup
// function. A variable set to the empty string is treated as not set.
func NewShopifyCredentials(lookup func(key string) (string, bool)) ShopifyCredentials {
	url, _ := lookup(ShopURLKey)
	token, _ := lookup(AccessTokenKey)

	return ShopifyCredentials{
		ShopURL:     url,
		AccessToken: token,
	}
}

// IsComplete checks if both the shop URL and the access token are set.
func (c ShopifyCredentials) IsComplete() bool {
	return c.ShopURL != "" && c.AccessToken != ""
}

// Missing returns the keys of the variables that are not set, in the order
// shop URL, access token.
func (c ShopifyCredentials) Missing() []string {
	var missing []string
	if c.ShopURL == "" {
		missing = append(missing, ShopURLKey)
	}
	if c.AccessToken == "" {
		missing = append(missing, AccessTokenKey)
	}
	return missing
}

// TokenLength returns the number of characters of the access token.
func (c ShopifyCredentials) TokenLength() int {
	return utf8.RuneCountInString(c.AccessToken)
}

// TokenPrefix returns the first characters of the access token.
func (c ShopifyCredentials) TokenPrefix() string {
	return Truncate(c.AccessToken, tokenPrefixLength)
}

// MaskedToken returns the first MaskedValueLength characters of the access
// token followed by "...".
func (c ShopifyCredentials) MaskedToken() string {
	return Truncate(c.AccessToken, MaskedValueLength) + maskSuffix
}
