package asyncapi

import (
	"bytes"
	"context"
	_ "embed"
	"strings"
	"sync"

	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"github.com/speakeasy-api/asyncapi/errors"
	"github.com/speakeasy-api/asyncapi/internal/version"
	"github.com/speakeasy-api/asyncapi/json"
	"github.com/speakeasy-api/asyncapi/validation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed asyncapi-3.0.schema.json
var documentSchemaJSON string

const documentSchemaURL = "https://asyncapi.com/definitions/3.0.0/structural.json"

var (
	documentSchema     *jsValidator.Schema
	documentSchemaOnce sync.Once
	defaultPrinter     = message.NewPrinter(language.English)
)

// ValidateNode checks a raw document against the embedded structural schema and the supported major version.
func ValidateNode(_ context.Context, root *yaml.Node) []error {
	schema := compiledDocumentSchema()

	var errs []error

	buf := bytes.NewBuffer(nil)
	if err := json.YAMLToJSON(root, 0, buf); err != nil {
		return []error{validation.NewValidationError(validation.NewTypeMismatchError("document is not valid json: %s", err.Error()), "", root)}
	}

	instance, err := jsValidator.UnmarshalJSON(buf)
	if err != nil {
		return []error{validation.NewValidationError(validation.NewTypeMismatchError("document is not valid json: %s", err.Error()), "", root)}
	}

	if err := schema.Validate(instance); err != nil {
		var validationErr *jsValidator.ValidationError
		if errors.As(err, &validationErr) {
			errs = append(errs, rootCauses(validationErr, root)...)
		} else {
			errs = append(errs, validation.NewValidationError(validation.NewValueValidationError("document invalid: %s", err.Error()), "", root))
		}
	}

	errs = append(errs, validateVersion(root)...)

	validation.SortValidationErrors(errs)
	return errs
}

func validateVersion(root *yaml.Node) []error {
	doc := root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}

	// Absence and wrong types are reported by the schema.
	node, ok := mappingValue(doc, "asyncapi")
	if !ok || node.Kind != yaml.ScalarNode {
		return nil
	}

	v, err := version.Parse(node.Value)
	if err != nil {
		return []error{validation.NewValidationError(ErrUnsupportedVersion.Wrap(err), "asyncapi", node)}
	}
	if !v.SameMajor(version.New(SupportedMajorVersion, 0, 0)) {
		return []error{validation.NewValidationError(ErrUnsupportedVersion.Wrapf("asyncapi version %s is not supported, only %d.x documents are", node.Value, SupportedMajorVersion), "asyncapi", node)}
	}
	return nil
}

func rootCauses(err *jsValidator.ValidationError, root *yaml.Node) []error {
	if len(err.Causes) == 0 {
		return []error{causeToError(err, root)}
	}

	var errs []error
	for _, cause := range err.Causes {
		errs = append(errs, rootCauses(cause, root)...)
	}
	return errs
}

func causeToError(cause *jsValidator.ValidationError, root *yaml.Node) error {
	location := strings.Join(cause.InstanceLocation, ".")
	node := validation.NodeAt(root, cause.InstanceLocation)
	msg := cause.ErrorKind.LocalizedString(defaultPrinter)

	field := location
	if field == "" {
		field = "document"
	}

	var kindErr error
	switch cause.ErrorKind.(type) {
	case *kind.Type:
		kindErr = validation.NewTypeMismatchError("%s %s", field, msg)
	case *kind.Required:
		kindErr = validation.NewMissingFieldError("%s %s", field, msg)
	default:
		kindErr = validation.NewValueValidationError("%s %s", field, msg)
	}
	return validation.NewValidationError(kindErr, location, node)
}

func compiledDocumentSchema() *jsValidator.Schema {
	documentSchemaOnce.Do(func() {
		doc, err := jsValidator.UnmarshalJSON(strings.NewReader(documentSchemaJSON))
		if err != nil {
			panic(err)
		}

		c := jsValidator.NewCompiler()
		if err := c.AddResource(documentSchemaURL, doc); err != nil {
			panic(err)
		}
		documentSchema = c.MustCompile(documentSchemaURL)
	})
	return documentSchema
}
