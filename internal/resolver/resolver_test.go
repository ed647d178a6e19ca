package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/errors"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/models"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/parser"
	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/provider"
)

func id(fullName string) models.TypeIdentifier {
	ident, err := models.ParseTypeIdentifier(fullName)
	if err != nil {
		panic(err)
	}
	return ident
}

func block(fullName, text string) string {
	return parser.MarkerLine + "\n" + parser.MarkerPrefix + fullName + "\n" + text
}

func dependencyNames(t *testing.T, r *Resolver, decl *models.ResolvedDeclaration) []string {
	t.Helper()
	deps, err := r.Dependencies(decl)
	require.NoError(t, err)
	names := make([]string, 0, len(deps))
	for _, dep := range deps {
		names = append(names, dep.FullName())
	}
	return names
}

func TestResolve_NoDependencies(t *testing.T) {
	r := New(provider.NewChain(provider.Static{"geometry_msgs/Point": "float64 x\nfloat64 y\n"}))

	decl, err := r.Resolve(id("geometry_msgs/Point"), true)
	require.NoError(t, err)
	assert.Equal(t, "float64 x\nfloat64 y\n", decl.Text)
	assert.True(t, decl.IsMessage)
	assert.Equal(t, "geometry_msgs/Point", decl.FullName())
}

func TestResolve_PointPath(t *testing.T) {
	r := New(provider.NewChain(provider.Static{
		"geometry_msgs/Point": "float64 x\nfloat64 y\n",
		"nav_msgs/Path":       "geometry_msgs/Point[] points\n",
	}))

	decl, err := r.Resolve(id("nav_msgs/Path"), true)
	require.NoError(t, err)

	expected := "geometry_msgs/Point[] points\n" + block("geometry_msgs/Point", "float64 x\nfloat64 y\n")
	assert.Equal(t, expected, decl.Text)
}

func TestResolve_DepthFirstFieldOrder(t *testing.T) {
	r := New(provider.NewChain(provider.Static{
		"pkg/R": "A a\nB b\n",
		"pkg/A": "C c\n",
		"pkg/B": "int32 b\n",
		"pkg/C": "int32 c\n",
	}))

	decl, err := r.Resolve(id("pkg/R"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg/A", "pkg/C", "pkg/B"}, dependencyNames(t, r, decl))

	expected := "A a\nB b\n" +
		block("pkg/A", "C c\n") +
		block("pkg/C", "int32 c\n") +
		block("pkg/B", "int32 b\n")
	assert.Equal(t, expected, decl.Text)
}

func TestResolve_SharedDependencyAppearsOnce(t *testing.T) {
	r := New(provider.NewChain(provider.Static{
		"pkg/R":     "Pose start\nPose goal\npkg/Point p\n",
		"pkg/Pose":  "Point position\n",
		"pkg/Point": "float64 x\n",
	}))

	decl, err := r.Resolve(id("pkg/R"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg/Pose", "pkg/Point"}, dependencyNames(t, r, decl))
}

func TestResolve_Cycle(t *testing.T) {
	r := New(provider.NewChain(provider.Static{
		"pkg/A": "B b\n",
		"pkg/B": "A a\n",
	}))

	decl, err := r.Resolve(id("pkg/A"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg/B"}, dependencyNames(t, r, decl))
	assert.Equal(t, "B b\n"+block("pkg/B", "A a\n"), decl.Text)
}

func TestResolve_ContextPackage(t *testing.T) {
	// Unqualified names inside a dependency belong to the dependency's package
	r := New(provider.NewChain(provider.Static{
		"nav_msgs/Odometry":    "geometry_msgs/Pose pose\n",
		"geometry_msgs/Pose":   "Point position\n",
		"geometry_msgs/Point":  "float64 x\n",
		"nav_msgs/Point":       "string wrong\n",
		"std_msgs/Header":      "uint32 seq\n",
		"nav_msgs/OdometryMsg": "Header header\nOdometry odom\n",
	}))

	decl, err := r.Resolve(id("nav_msgs/OdometryMsg"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"std_msgs/Header",
		"nav_msgs/Odometry",
		"geometry_msgs/Pose",
		"geometry_msgs/Point",
	}, dependencyNames(t, r, decl))
}

func TestResolve_HeaderFromBuiltins(t *testing.T) {
	r := New(provider.NewChain(provider.Static{"pkg/Stamped": "Header header\nfloat64 value\n"}, provider.Builtins()))

	decl, err := r.Resolve(id("pkg/Stamped"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"std_msgs/Header"}, dependencyNames(t, r, decl))
	assert.Contains(t, decl.Text, "MSG: std_msgs/Header\nuint32 seq\ntime stamp\nstring frame_id\n")
}

func TestResolve_MissingRoot(t *testing.T) {
	r := New(provider.NewChain())

	_, err := r.Resolve(id("pkg/Nothing"), true)
	require.Error(t, err)

	var missing *errors.MissingDefinitionError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "pkg/Nothing", missing.TypeName)
	assert.Equal(t, "pkg/Nothing", missing.Missing)
	assert.True(t, errors.Is(err, provider.ErrNotFound))
}

func TestResolve_MissingDependency(t *testing.T) {
	r := New(provider.NewChain(provider.Static{
		"pkg/R": "A a\n",
		"pkg/A": "other_pkg/Gone g\n",
	}))

	_, err := r.Resolve(id("pkg/R"), true)
	require.Error(t, err)

	var missing *errors.MissingDefinitionError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "pkg/R", missing.TypeName)
	assert.Equal(t, "other_pkg/Gone", missing.Missing)
	assert.Contains(t, err.Error(), "other_pkg/Gone")
	assert.Contains(t, err.Error(), "pkg/R")
}

func TestResolve_MalformedDependency(t *testing.T) {
	r := New(provider.NewChain(provider.Static{
		"pkg/R":   "Bad b\n",
		"pkg/Bad": "int32\n",
	}))

	_, err := r.Resolve(id("pkg/R"), true)
	require.Error(t, err)

	var malformed *errors.MalformedDefinitionError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "pkg/Bad", malformed.TypeName)
	assert.Equal(t, 1, malformed.Line)
}

func TestResolve_MessageWithSeparatorIsMalformed(t *testing.T) {
	r := New(provider.NewChain(provider.Static{
		"pkg/Bad": "int32 a\n---\nint32 b\n---\nint32 c\n",
		"pkg/R":   "Bad b\n",
	}))

	for _, root := range []string{"pkg/Bad", "pkg/R"} {
		decl, err := r.Resolve(id(root), true)
		require.Error(t, err, root)
		assert.Nil(t, decl)

		var malformed *errors.MalformedDefinitionError
		require.True(t, errors.As(err, &malformed), root)
		assert.Equal(t, "pkg/Bad", malformed.TypeName)
		assert.Equal(t, 2, malformed.Line)
	}
}

func TestResolveText_HalfWithSeparatorIsMalformed(t *testing.T) {
	r := New(provider.NewChain())

	_, err := r.ResolveText(id("pkg/MoveRequest"), "int32 a\n---\n", true)
	assert.Equal(t, errors.MalformedDefinitionErrorCode, errors.CodeOf(err))
}

func TestResolveText_ServiceHalves(t *testing.T) {
	r := New(provider.NewChain(provider.Static{"pkg/Point": "float64 x\n"}))

	request, response, err := parser.SplitService("Point target\n---\nbool ok\n")
	require.NoError(t, err)

	reqDecl, err := r.ResolveText(id("pkg/Move").WithSuffix("Request"), request, true)
	require.NoError(t, err)
	assert.Equal(t, "pkg/MoveRequest", reqDecl.FullName())
	assert.Equal(t, "Point target\n"+block("pkg/Point", "float64 x\n"), reqDecl.Text)

	respDecl, err := r.ResolveText(id("pkg/Move").WithSuffix("Response"), response, true)
	require.NoError(t, err)
	assert.Equal(t, "bool ok\n", respDecl.Text)
}

func TestResolveText_EmptyHalf(t *testing.T) {
	r := New(provider.NewChain())

	decl, err := r.ResolveText(id("pkg/EmptyResponse"), "", true)
	require.NoError(t, err)
	assert.Equal(t, "", decl.Text)
}

func TestResolve_ServiceContainer(t *testing.T) {
	r := New(provider.NewChain(provider.Static{
		"pkg/Move":  "Point target\n---\nbool ok\n",
		"pkg/Point": "float64 x\n",
	}))

	decl, err := r.Resolve(id("pkg/Move"), false)
	require.NoError(t, err)
	assert.False(t, decl.IsMessage)
	assert.Equal(t, []string{"pkg/Point"}, dependencyNames(t, r, decl))
}
