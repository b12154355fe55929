package validators

import (
	"context"

	"github.com/speakeasy-api/asyncapi/asyncapi"
)

// PassThroughValidator accepts every document unchanged. It holds the place of a reference kind that has no rules
// beyond the type check performed by UnifiedReferencesValidator.
type PassThroughValidator struct {
	kind string
}

var _ asyncapi.Processor = (*PassThroughValidator)(nil)

// Name returns the reference kind the validator stands for.
func (v *PassThroughValidator) Name() string {
	return v.kind + " reference validator"
}

func (v *PassThroughValidator) Process(_ context.Context, doc *asyncapi.Document) (*asyncapi.Document, error) {
	return doc, nil
}

func passThrough(kind string) *PassThroughValidator {
	return &PassThroughValidator{kind: kind}
}

func NewChannelBindingsRefValidator() *PassThroughValidator   { return passThrough("channel bindings") }
func NewChannelsRefValidator() *PassThroughValidator          { return passThrough("channels") }
func NewCorrelationIDsRefValidator() *PassThroughValidator    { return passThrough("correlation ids") }
func NewExternalDocsRefValidator() *PassThroughValidator      { return passThrough("external docs") }
func NewMessageBindingsRefValidator() *PassThroughValidator   { return passThrough("message bindings") }
func NewMessageTraitsRefValidator() *PassThroughValidator     { return passThrough("message traits") }
func NewMessagesRefValidator() *PassThroughValidator          { return passThrough("messages") }
func NewOperationBindingsRefValidator() *PassThroughValidator { return passThrough("operation bindings") }
func NewOperationTraitsRefValidator() *PassThroughValidator   { return passThrough("operation traits") }
func NewOperationsRefValidator() *PassThroughValidator        { return passThrough("operations") }
func NewParametersRefValidator() *PassThroughValidator        { return passThrough("parameters") }
func NewRepliesRefValidator() *PassThroughValidator           { return passThrough("replies") }
func NewReplyAddressesRefValidator() *PassThroughValidator    { return passThrough("reply addresses") }
func NewSchemasRefValidator() *PassThroughValidator           { return passThrough("schemas") }
func NewSecuritySchemesRefValidator() *PassThroughValidator   { return passThrough("security schemes") }
func NewServerVariablesRefValidator() *PassThroughValidator   { return passThrough("server variables") }
func NewServersRefValidator() *PassThroughValidator           { return passThrough("servers") }
