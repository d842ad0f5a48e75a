// pre_processor.go implements the WGSL pre-processor. It replaces @oxy: annotations with
// the canonical struct sources embedded by the GPU type packages, or with generated
// @group/@binding declarations, so the Go structs and the shader never drift apart.
package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-vis/engine/camera"
	"github.com/Carmen-Shannon/oxy-vis/engine/light"
	"github.com/Carmen-Shannon/oxy-vis/engine/model"
	"github.com/Carmen-Shannon/oxy-vis/engine/object"
)

// registryEntry pairs an embedded WGSL struct source with the type name emitted in
// generated declarations.
type registryEntry struct {
	Source string
	Type   string
}

type preProcessor struct {
	structRegistry       map[AnnotationArg]registryEntry
	addressSpaceRegistry map[AnnotationArg]string

	// declarations is reset at the start of each Process call.
	declarations []Annotation
}

// PreProcessor expands @oxy: annotations in WGSL source.
type PreProcessor interface {
	// Process replaces every annotation in source with its WGSL output.
	//
	// Parameters:
	//   - source: the raw WGSL source
	//
	// Returns:
	//   - string: the processed WGSL source
	//   - error: an error if an annotation is malformed
	Process(source string) (string, error)

	// Declarations returns the group annotations collected by the last Process call,
	// in source order.
	//
	// Returns:
	//   - []Annotation: the collected declarations
	Declarations() []Annotation
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a pre-processor with every GPU struct type registered.
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor
func NewPreProcessor() PreProcessor {
	return &preProcessor{
		structRegistry: map[AnnotationArg]registryEntry{
			AnnotationArgCamera:       {Source: camera.GPUCameraUniformSource, Type: "CameraUniform"},
			annotationArgVertex:       {Source: model.GPUVertexSource, Type: "VertexInput"},
			annotationArgInstance:     {Source: object.GPUInstanceSource, Type: "InstanceInput"},
			AnnotationArgLight:        {Source: light.GPULightSource, Type: "Light"},
			AnnotationArgLightUniform: {Source: light.GPULightSource, Type: "LightUniform"},
		},
		addressSpaceRegistry: map[AnnotationArg]string{
			annotationArgStorageTypeUniform: "var<uniform>",
			annotationArgStorageTypeRead:    "var<storage, read>",
		},
	}
}

func (p *preProcessor) Process(source string) (string, error) {
	p.declarations = p.declarations[:0]

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))
	included := make(map[string]bool)

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case annotationTypeInclude:
			entry := p.structRegistry[a.Args[0]]
			// light and light_uniform share one source file
			if included[entry.Source] {
				continue
			}
			included[entry.Source] = true
			out = append(out, entry.Source)
		case AnnotationTypeBindingGroup:
			addrSpace := p.addressSpaceRegistry[a.Args[0]]
			entry := p.structRegistry[a.Args[2]]
			out = append(out, fmt.Sprintf("@group(%d) @binding(%d) %s %s: %s;", *a.Group, *a.Binding, addrSpace, a.Args[1], entry.Type))
			p.declarations = append(p.declarations, *a)
		}
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}
