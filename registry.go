package fastapprox

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-fastapprox/fast"
	"github.com/cwbudde/algo-fastapprox/faster"
)

// ErrUnknownFunction is returned when a function name is not in the registry.
var ErrUnknownFunction = errors.New("fastapprox: unknown function")

// Func is a unary approximation kernel.
type Func func(float32) float32

// Func2 is a binary approximation kernel.
type Func2 func(float32, float32) float32

// Function categories.
const (
	CategoryBase       = "base"
	CategoryElementary = "elementary"
	CategorySpecial    = "special"
	CategoryHyperbolic = "hyperbolic"
	CategoryTrig       = "trig"
	CategoryTrigFull   = "trig-full"
	CategoryMisc       = "misc"
)

type entry struct {
	name     string
	category string
	fns      [tierCount]Func
}

var registry = []entry{
	{"log2", CategoryBase, [tierCount]Func{fast.Log2, faster.Log2}},
	{"pow2", CategoryBase, [tierCount]Func{fast.Pow2, faster.Pow2}},
	{"ln", CategoryElementary, [tierCount]Func{fast.Log, faster.Log}},
	{"exp", CategoryElementary, [tierCount]Func{fast.Exp, faster.Exp}},
	{"sigmoid", CategoryElementary, [tierCount]Func{fast.Sigmoid, faster.Sigmoid}},
	{"ln_gamma", CategorySpecial, [tierCount]Func{fast.Lgamma, faster.Lgamma}},
	{"digamma", CategorySpecial, [tierCount]Func{fast.Digamma, faster.Digamma}},
	{"erf", CategorySpecial, [tierCount]Func{fast.Erf, faster.Erf}},
	{"erfc", CategorySpecial, [tierCount]Func{fast.Erfc, faster.Erfc}},
	{"erf_inv", CategorySpecial, [tierCount]Func{fast.Erfinv, faster.Erfinv}},
	{"sinh", CategoryHyperbolic, [tierCount]Func{fast.Sinh, faster.Sinh}},
	{"cosh", CategoryHyperbolic, [tierCount]Func{fast.Cosh, faster.Cosh}},
	{"tanh", CategoryHyperbolic, [tierCount]Func{fast.Tanh, faster.Tanh}},
	{"sin", CategoryTrig, [tierCount]Func{fast.Sin, faster.Sin}},
	{"cos", CategoryTrig, [tierCount]Func{fast.Cos, faster.Cos}},
	{"tan", CategoryTrig, [tierCount]Func{fast.Tan, faster.Tan}},
	{"sinfull", CategoryTrigFull, [tierCount]Func{fast.SinFull, faster.SinFull}},
	{"cosfull", CategoryTrigFull, [tierCount]Func{fast.CosFull, faster.CosFull}},
	{"tanfull", CategoryTrigFull, [tierCount]Func{fast.TanFull, faster.TanFull}},
	{"lambertw", CategoryMisc, [tierCount]Func{fast.LambertW, faster.LambertW}},
	{"lambertwexpx", CategoryMisc, [tierCount]Func{fast.LambertWExpX, faster.LambertWExpX}},
}

var pows = [tierCount]Func2{fast.Pow, faster.Pow}

var byName = func() map[string]*entry {
	m := make(map[string]*entry, len(registry))
	for i := range registry {
		m[registry[i].name] = &registry[i]
	}
	return m
}()

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the unary function called name in tier t.
// The binary pow is not unary; use LookupPow.
func Lookup(t Tier, name string) (Func, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTier, t)
	}
	e, ok := byName[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	return e.fns[t], nil
}

// LookupPow returns x**p in tier t.
func LookupPow(t Tier) (Func2, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTier, t)
	}
	return pows[t], nil
}

// Names returns the sorted names of the unary functions Lookup resolves.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	return names
}

// Category returns the category of the named function, including "pow",
// or "" if the name is unknown.
func Category(name string) string {
	name = normalize(name)
	if name == "pow" {
		return CategoryElementary
	}
	if e, ok := byName[name]; ok {
		return e.category
	}
	return ""
}
