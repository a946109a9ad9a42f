package agentscape

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/agentscape/agent"
	"github.com/hupe1980/agentscape/core"
	"github.com/hupe1980/agentscape/logging"
	"github.com/hupe1980/agentscape/space"
)

// Space kinds accepted in a scenario.
const (
	SpaceKindGrid  = "grid"
	SpaceKindGraph = "graph"
)

// Behavior names accepted in a scenario.
const (
	// BehaviorWalker is a grid random walker.
	BehaviorWalker = "walker"
	// BehaviorDrifter re-homes to random graph nodes.
	BehaviorDrifter = "drifter"
	// BehaviorLifespan dies after its ttl; works on any topology.
	BehaviorLifespan = "lifespan"
	// BehaviorClock is a bare base agent that only advances its clock.
	BehaviorClock = "clock"
)

// scenarioSchema is the structural contract a scenario document must meet
// before the semantic checks run.
const scenarioSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "space", "agents"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "seed": {"type": "integer"},
    "steps": {"type": "integer", "minimum": 0},
    "space": {
      "type": "object",
      "required": ["kind"],
      "properties": {
        "kind": {"enum": ["grid", "graph"]},
        "width": {"type": "integer", "minimum": 1},
        "height": {"type": "integer", "minimum": 1}
      }
    },
    "agents": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["behavior", "count"],
        "properties": {
          "behavior": {"enum": ["walker", "drifter", "lifespan", "clock"]},
          "count": {"type": "integer", "minimum": 1},
          "ttl": {"type": "integer", "minimum": 1}
        }
      }
    }
  }
}`

var compiledScenarioSchema = jsonschema.MustCompileString("scenario.json", scenarioSchema)

// SpaceConfig selects and sizes the topology.
type SpaceConfig struct {
	Kind   string `yaml:"kind" json:"kind"`
	Width  int    `yaml:"width,omitempty" json:"width,omitempty"`
	Height int    `yaml:"height,omitempty" json:"height,omitempty"`
}

// AgentConfig spawns count agents of one behavior.
type AgentConfig struct {
	Behavior string `yaml:"behavior" json:"behavior"`
	Count    int    `yaml:"count" json:"count"`
	TTL      int64  `yaml:"ttl,omitempty" json:"ttl,omitempty"`
}

// Scenario is a declarative model setup: a named, seeded world with a
// topology and an initial population. Example:
//
//	name: walkers
//	seed: 42
//	steps: 200
//	space: { kind: grid, width: 10, height: 10 }
//	agents:
//	  - { behavior: walker, count: 25 }
//	  - { behavior: lifespan, count: 5, ttl: 50 }
type Scenario struct {
	Name   string        `yaml:"name" json:"name"`
	Seed   int64         `yaml:"seed" json:"seed"`
	Steps  int           `yaml:"steps" json:"steps"`
	Space  SpaceConfig   `yaml:"space" json:"space"`
	Agents []AgentConfig `yaml:"agents" json:"agents"`
}

// Validate checks the scenario structurally against the embedded JSON Schema
// (the value is round-tripped through encoding/json first, since the schema
// validator consumes decoded JSON) and then semantically: topology extents
// and behavior/topology compatibility.
func (sc *Scenario) Validate() error {
	raw, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode scenario: %w", err)
	}
	if err := compiledScenarioSchema.Validate(doc); err != nil {
		return fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	switch sc.Space.Kind {
	case SpaceKindGrid:
		if sc.Space.Width <= 0 || sc.Space.Height <= 0 {
			return fmt.Errorf("scenario %q: grid needs positive extents, got %dx%d", sc.Name, sc.Space.Width, sc.Space.Height)
		}
	case SpaceKindGraph:
	default:
		return fmt.Errorf("scenario %q: unknown space kind %q", sc.Name, sc.Space.Kind)
	}

	for _, ac := range sc.Agents {
		switch ac.Behavior {
		case BehaviorWalker:
			if sc.Space.Kind != SpaceKindGrid {
				return fmt.Errorf("scenario %q: behavior %q needs a grid space", sc.Name, ac.Behavior)
			}
		case BehaviorDrifter:
			if sc.Space.Kind != SpaceKindGraph {
				return fmt.Errorf("scenario %q: behavior %q needs a graph space", sc.Name, ac.Behavior)
			}
		case BehaviorLifespan:
			if ac.TTL <= 0 {
				return fmt.Errorf("scenario %q: behavior %q needs a positive ttl", sc.Name, ac.Behavior)
			}
		case BehaviorClock:
		default:
			return fmt.Errorf("scenario %q: unknown behavior %q", sc.Name, ac.Behavior)
		}
	}

	return nil
}

// ParseScenario decodes and validates a YAML scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// FileReader abstracts file access so tests can feed scenarios from memory.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// OSFileReader reads scenarios from the local filesystem.
type OSFileReader struct{}

// ReadFile reads the file at path.
func (OSFileReader) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// ScenarioLoaderOptions holds overrides passed to NewScenarioLoader.
type ScenarioLoaderOptions struct {
	// Reader supplies scenario bytes. Defaults to OSFileReader.
	Reader FileReader
}

// ScenarioLoader loads and validates scenario files.
type ScenarioLoader struct {
	reader FileReader
}

// NewScenarioLoader constructs a loader with optional overrides.
func NewScenarioLoader(optFns ...func(o *ScenarioLoaderOptions)) *ScenarioLoader {
	opts := ScenarioLoaderOptions{
		Reader: OSFileReader{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ScenarioLoader{reader: opts.Reader}
}

// Load reads, decodes and validates the scenario at path.
func (l *ScenarioLoader) Load(path string) (*Scenario, error) {
	data, err := l.reader.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// BuildOptions holds overrides passed to BuildWorld.
type BuildOptions struct {
	// Logger is handed to the spawned behaviors. Defaults to NoOpLogger.
	Logger logging.Logger
}

// BuildWorld materializes a scenario: one seeded random source drives the
// topology and every behavior, so equal seeds give identical runs. The
// scenario is validated first; ids are allocated from a fresh Identity in
// declaration order.
func BuildWorld(sc *Scenario, optFns ...func(o *BuildOptions)) (*core.World, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	opts := BuildOptions{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	rng := rand.New(rand.NewSource(sc.Seed))

	var (
		s     core.Space
		grid  *space.Grid
		graph *space.Graph
	)
	switch sc.Space.Kind {
	case SpaceKindGrid:
		g, err := space.NewGrid(sc.Space.Width, sc.Space.Height, func(o *space.GridOptions) {
			o.Rand = rng
		})
		if err != nil {
			return nil, err
		}
		grid, s = g, g
	case SpaceKindGraph:
		g := space.NewGraph(func(o *space.GraphOptions) {
			o.Rand = rng
		})
		graph, s = g, g
	}

	w, err := core.NewWorld(s)
	if err != nil {
		return nil, err
	}

	seq := core.NewIdentity()
	for _, ac := range sc.Agents {
		for i := 0; i < ac.Count; i++ {
			var (
				a   core.Agent
				err error
			)
			switch ac.Behavior {
			case BehaviorWalker:
				a, err = agent.NewRandomWalker(seq, grid, func(o *agent.RandomWalkerOptions) {
					o.Rand = rng
					o.Logger = opts.Logger
				})
			case BehaviorDrifter:
				a, err = agent.NewDrifter(seq, graph, func(o *agent.DrifterOptions) {
					o.Logger = opts.Logger
				})
			case BehaviorLifespan:
				a, err = agent.NewLifespan(seq, s, ac.TTL, func(o *agent.LifespanOptions) {
					o.Logger = opts.Logger
				})
			case BehaviorClock:
				var base core.BaseAgent
				base, err = core.NewBaseAgent(seq)
				a = &base
			}
			if err != nil {
				return nil, fmt.Errorf("spawn %s: %w", ac.Behavior, err)
			}
			if err := core.AddAgent(s, a); err != nil {
				return nil, fmt.Errorf("place %s: %w", ac.Behavior, err)
			}
		}
	}

	return w, nil
}
