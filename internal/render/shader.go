package render

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Built-in ADS (ambient/diffuse/specular) program. Attribute and matrix
// uniform names follow the raylib conventions (vertexPosition, mvp, matModel,
// matNormal) so the runtime uploads the composed transform, the model matrix
// and the inverse-transpose normal matrix per draw; the lighting uniforms
// below are this package's own contract.
const (
	defaultVertexShader = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
in vec2 vertexTexCoord;
in vec4 vertexColor;

uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;

out vec3 fragPosition;
out vec3 fragNormal;
out vec2 fragTexCoord;
out vec4 fragColor;

void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  fragTexCoord = vertexTexCoord;
  fragColor = vertexColor;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	defaultFragmentShader = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
in vec2 fragTexCoord;
in vec4 fragColor;

uniform vec3 lightPos;
uniform float ka;
uniform float kd;
uniform float ks;
uniform vec4 objectColor;
uniform vec4 specularColor;
uniform float shininess;

out vec4 finalColor;

void main() {
  vec4 base = objectColor * fragColor;
  vec3 n = normalize(fragNormal);
  vec3 l = normalize(lightPos - fragPosition);
  vec3 v = normalize(-fragPosition);

  vec3 ambient = ka * base.rgb;
  float diff = max(dot(n, l), 0.0);
  vec3 diffuse = kd * diff * base.rgb;
  vec3 specular = vec3(0.0);
  if (diff > 0.0) {
    vec3 r = reflect(-l, n);
    specular = ks * pow(max(dot(r, v), 0.0), shininess) * specularColor.rgb;
  }
  finalColor = vec4(ambient + diffuse + specular, base.a);
}
`
)

// Lighting holds the shading parameters uploaded every frame. Positions and
// colors are in view space; the camera sits at the origin.
type Lighting struct {
	LightPos      mgl32.Vec3
	Ambient       float32
	Diffuse       float32
	Specular      float32
	ObjectColor   mgl32.Vec4
	SpecularColor mgl32.Vec4
	Shininess     float32
}

// DefaultLighting returns the startup lighting: a light up and to the right
// behind the camera, a green object, white highlights.
func DefaultLighting() Lighting {
	return Lighting{
		LightPos:      mgl32.Vec3{1, 1, -1},
		Ambient:       0.30,
		Diffuse:       0.40,
		Specular:      0.35,
		ObjectColor:   mgl32.Vec4{0, 1, 0, 1},
		SpecularColor: mgl32.Vec4{1, 1, 1, 1},
		Shininess:     1,
	}
}

// Program wraps the active shading program and its uniform locations. Either
// stage can be replaced from a file at runtime; a stage that fails to compile
// or link leaves the previous program active, so there is always a working
// program once construction has succeeded.
type Program struct {
	shader rl.Shader
	loaded bool

	locLightPos  int32
	locKa        int32
	locKd        int32
	locKs        int32
	locObjColor  int32
	locSpecColor int32
	locShininess int32

	vertPath string // empty = built-in stage
	fragPath string
}

// NewProgram compiles the built-in ADS program. Requires a live GL context.
func NewProgram() (*Program, error) {
	p := &Program{}
	if err := p.rebuild("", ""); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadVertex replaces the vertex stage from a file, keeping the current
// fragment stage. On failure the previous program stays active.
func (p *Program) LoadVertex(path string) error {
	return p.rebuild(path, p.fragPath)
}

// LoadFragment replaces the fragment stage from a file, keeping the current
// vertex stage.
func (p *Program) LoadFragment(path string) error {
	return p.rebuild(p.vertPath, path)
}

// Reload recompiles the current stage pair from disk. Used by the shader
// watcher after the user saves from an external editor.
func (p *Program) Reload() error {
	return p.rebuild(p.vertPath, p.fragPath)
}

// SourcePaths returns the current vertex and fragment file paths; an empty
// string means the built-in stage.
func (p *Program) SourcePaths() (vert, frag string) {
	return p.vertPath, p.fragPath
}

// Shader returns the underlying raylib shader for material binding.
func (p *Program) Shader() rl.Shader {
	return p.shader
}

// Apply uploads the lighting uniforms. Locations missing from a custom
// fragment shader are tolerated and skipped.
func (p *Program) Apply(l Lighting) {
	p.setVec3(p.locLightPos, l.LightPos)
	p.setFloat(p.locKa, l.Ambient)
	p.setFloat(p.locKd, l.Diffuse)
	p.setFloat(p.locKs, l.Specular)
	p.setVec4(p.locObjColor, l.ObjectColor)
	p.setVec4(p.locSpecColor, l.SpecularColor)
	p.setFloat(p.locShininess, l.Shininess)
}

// Unload releases the program.
func (p *Program) Unload() {
	if p.loaded {
		rl.UnloadShader(p.shader)
		p.loaded = false
	}
}

// rebuild compiles and links the given stage pair and swaps it in if the
// result satisfies the mandatory contract: the position attribute, the
// combined transform uniform and the object color uniform must resolve.
// Optional locations (normals, UVs, the rest of the lighting set) may be
// absent from custom shaders.
func (p *Program) rebuild(vertPath, fragPath string) error {
	vs, err := stageSource(vertPath, defaultVertexShader)
	if err != nil {
		return err
	}
	fs, err := stageSource(fragPath, defaultFragmentShader)
	if err != nil {
		return err
	}

	shader := rl.LoadShaderFromMemory(vs, fs)
	if !rl.IsShaderValid(shader) {
		rl.UnloadShader(shader)
		return fmt.Errorf("shader program failed to link (vert=%s frag=%s)",
			stageName(vertPath), stageName(fragPath))
	}
	if rl.GetShaderLocationAttrib(shader, "vertexPosition") < 0 {
		rl.UnloadShader(shader)
		return fmt.Errorf("shader is missing the vertexPosition attribute")
	}
	if rl.GetShaderLocation(shader, "mvp") < 0 {
		rl.UnloadShader(shader)
		return fmt.Errorf("shader is missing the mvp uniform")
	}
	if rl.GetShaderLocation(shader, "objectColor") < 0 {
		rl.UnloadShader(shader)
		return fmt.Errorf("shader is missing the objectColor uniform")
	}

	if p.loaded {
		rl.UnloadShader(p.shader)
	}
	p.shader = shader
	p.loaded = true
	p.vertPath = vertPath
	p.fragPath = fragPath

	p.locLightPos = rl.GetShaderLocation(shader, "lightPos")
	p.locKa = rl.GetShaderLocation(shader, "ka")
	p.locKd = rl.GetShaderLocation(shader, "kd")
	p.locKs = rl.GetShaderLocation(shader, "ks")
	p.locObjColor = rl.GetShaderLocation(shader, "objectColor")
	p.locSpecColor = rl.GetShaderLocation(shader, "specularColor")
	p.locShininess = rl.GetShaderLocation(shader, "shininess")
	return nil
}

func (p *Program) setFloat(loc int32, v float32) {
	if loc >= 0 {
		rl.SetShaderValue(p.shader, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}

func (p *Program) setVec3(loc int32, v mgl32.Vec3) {
	if loc >= 0 {
		rl.SetShaderValue(p.shader, loc, v[:], rl.ShaderUniformVec3)
	}
}

func (p *Program) setVec4(loc int32, v mgl32.Vec4) {
	if loc >= 0 {
		rl.SetShaderValue(p.shader, loc, v[:], rl.ShaderUniformVec4)
	}
}

func stageSource(path, builtin string) (string, error) {
	if path == "" {
		return builtin, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader %s: %w", path, err)
	}
	return string(data), nil
}

func stageName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
