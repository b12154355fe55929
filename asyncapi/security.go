package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// SecuritySchemeType is the type of a security scheme.
type SecuritySchemeType string

const (
	SecuritySchemeTypeUserPassword         SecuritySchemeType = "userPassword"
	SecuritySchemeTypeAPIKey               SecuritySchemeType = "apiKey"
	SecuritySchemeTypeX509                 SecuritySchemeType = "X509"
	SecuritySchemeTypeSymmetricEncryption  SecuritySchemeType = "symmetricEncryption"
	SecuritySchemeTypeAsymmetricEncryption SecuritySchemeType = "asymmetricEncryption"
	SecuritySchemeTypeHTTPAPIKey           SecuritySchemeType = "httpApiKey"
	SecuritySchemeTypeHTTP                 SecuritySchemeType = "http"
	SecuritySchemeTypeOAuth2               SecuritySchemeType = "oauth2"
	SecuritySchemeTypeOpenIDConnect        SecuritySchemeType = "openIdConnect"
	SecuritySchemeTypePlain                SecuritySchemeType = "plain"
	SecuritySchemeTypeScramSHA256          SecuritySchemeType = "scramSha256"
	SecuritySchemeTypeScramSHA512          SecuritySchemeType = "scramSha512"
	SecuritySchemeTypeGSSAPI               SecuritySchemeType = "gssapi"
)

// SecurityScheme defines a security scheme that can be used by the operations.
type SecurityScheme struct {
	// The type of the security scheme. Required.
	Type SecuritySchemeType `yaml:"type"`
	// A short description for security scheme.
	Description string `yaml:"description,omitempty"`
	// The name of the header, query or cookie parameter to be used, for httpApiKey.
	Name string `yaml:"name,omitempty"`
	// The location of the API key.
	In string `yaml:"in,omitempty"`
	// The name of the HTTP Authorization scheme to be used, for http.
	Scheme string `yaml:"scheme,omitempty"`
	// A hint to the client to identify how the bearer token is formatted.
	BearerFormat string `yaml:"bearerFormat,omitempty"`
	// An object containing configuration information for the supported flow types, for oauth2.
	Flows *OAuthFlows `yaml:"flows,omitempty"`
	// OpenId Connect URL to discover OAuth2 configuration values.
	OpenIDConnectURL string `yaml:"openIdConnectUrl,omitempty"`
	// List of the needed scope names.
	Scopes []string `yaml:"scopes,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*SecurityScheme)(nil)

func (s *SecurityScheme) Fields() []walk.Field {
	return []walk.Field{
		walk.String("type", "type", string(s.Type)),
		walk.String("description", "description", s.Description),
		walk.String("name", "name", s.Name),
		walk.String("in", "in", s.In),
		walk.String("scheme", "scheme", s.Scheme),
		walk.String("bearer_format", "bearerFormat", s.BearerFormat),
		walk.Value("flows", "flows", s.Flows),
		walk.String("open_id_connect_url", "openIdConnectUrl", s.OpenIDConnectURL),
		walk.Slice("scopes", "scopes", s.Scopes),
	}
}

func (s *SecurityScheme) UnmarshalYAML(node *yaml.Node) error {
	type alias SecurityScheme
	return decodeModel(node, (*alias)(s), &s.Extensions, false)
}

func (s *SecurityScheme) MarshalYAML() (any, error) {
	type alias SecurityScheme
	return encodeModel((*alias)(s), s.Extensions)
}

// OAuthFlows allows configuration of the supported OAuth flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow `yaml:"implicit,omitempty"`
	Password          *OAuthFlow `yaml:"password,omitempty"`
	ClientCredentials *OAuthFlow `yaml:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlow `yaml:"authorizationCode,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*OAuthFlows)(nil)

func (f *OAuthFlows) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("implicit", "implicit", f.Implicit),
		walk.Value("password", "password", f.Password),
		walk.Value("client_credentials", "clientCredentials", f.ClientCredentials),
		walk.Value("authorization_code", "authorizationCode", f.AuthorizationCode),
	}
}

func (f *OAuthFlows) UnmarshalYAML(node *yaml.Node) error {
	type alias OAuthFlows
	return decodeModel(node, (*alias)(f), &f.Extensions, false)
}

func (f *OAuthFlows) MarshalYAML() (any, error) {
	type alias OAuthFlows
	return encodeModel((*alias)(f), f.Extensions)
}

// OAuthFlow holds configuration details for a supported OAuth flow.
type OAuthFlow struct {
	AuthorizationURL string                            `yaml:"authorizationUrl,omitempty"`
	TokenURL         string                            `yaml:"tokenUrl,omitempty"`
	RefreshURL       string                            `yaml:"refreshUrl,omitempty"`
	AvailableScopes  *sequencedmap.Map[string, string] `yaml:"availableScopes"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*OAuthFlow)(nil)

func (f *OAuthFlow) Fields() []walk.Field {
	return []walk.Field{
		walk.String("authorization_url", "authorizationUrl", f.AuthorizationURL),
		walk.String("token_url", "tokenUrl", f.TokenURL),
		walk.String("refresh_url", "refreshUrl", f.RefreshURL),
		walk.Map("available_scopes", "availableScopes", f.AvailableScopes),
	}
}

func (f *OAuthFlow) UnmarshalYAML(node *yaml.Node) error {
	type alias OAuthFlow
	return decodeModel(node, (*alias)(f), &f.Extensions, false)
}

func (f *OAuthFlow) MarshalYAML() (any, error) {
	type alias OAuthFlow
	return encodeModel((*alias)(f), f.Extensions)
}
