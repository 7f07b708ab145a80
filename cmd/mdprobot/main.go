/*
mdprobot drives the exploration/fastest-path core over a websocket: a single
page, robot, and arena served per client connection. Each client upgrade
gets its own Queue, its own Orchestrator, and its own robot pose, so
concurrent connections never share mutable state.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/arena"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/config"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/geometry"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/orchestrator"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/robot"
	"github.com/HanYiChoong/MDP-Grp6-Algorithms/internal/transport"
)

var (
	host       *string
	port       *string
	addr       string
	configPath *string
	mapPath    *string
)

// TODO: per 12-factor rules these should be taken from env too; KISS for now.
func init() {
	host = flag.String("host", "", "the host ip")
	port = flag.String("port", "8080", "the host port")
	configPath = flag.String("config", "./config.yaml", "path to the run-parameter YAML file")
	mapPath = flag.String("map", "", "optional path to a canned P1|P2 map file, read once at boot")
	flag.Parse()
	addr = *host + ":" + *port
}

// loadArena returns the boot arena: a freshly seeded one, or one decoded
// from the canned map file named by -map, per §6's map file format.
func loadArena() (*arena.Arena, error) {
	if *mapPath == "" {
		return arena.New(), nil
	}

	f, err := os.Open(*mapPath)
	if err != nil {
		return nil, fmt.Errorf("loadArena: open %s: %w", *mapPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, fmt.Errorf("loadArena: %s is empty", *mapPath)
	}
	fields := strings.SplitN(scanner.Text(), "|", 2)
	if len(fields) != 2 {
		return nil, fmt.Errorf("loadArena: %s is not in P1|P2 form", *mapPath)
	}

	a, err := arena.DecodeMDF(fields[0], fields[1])
	if err != nil {
		return nil, fmt.Errorf("loadArena: decode %s: %w", *mapPath, err)
	}
	a.EnsureBootRegions()
	return a, nil
}

func runApp() error {
	settings, err := config.FromYaml(*configPath)
	if err != nil {
		return err
	}
	orchCfg := settings.OrchestratorConfig()

	// debugArena backs only the /debug/arena route: a boot-time
	// snapshot for a human or GUI to sanity-check the loaded map, not the
	// arena any connection actually explores. Each connection below builds
	// its own arena, so no *arena.Arena is ever mutated from more than one
	// goroutine.
	debugArena, err := loadArena()
	if err != nil {
		return err
	}

	newOrchestrator := func(queue *orchestrator.Queue, sink orchestrator.FrameSink) *orchestrator.Orchestrator {
		a, err := loadArena()
		if err != nil {
			log.Printf("mdprobot: reloading boot arena for new connection: %v", err)
			a = arena.New()
		}
		r := robot.New(
			geometry.Pose{Point: arena.CanonicalStart, Direction: geometry.East},
			robot.DefaultSensors(),
			orchCfg.RobotSpeed,
		)
		return orchestrator.New(a, r, queue, sink, orchCfg)
	}

	mux := transport.NewMux(debugArena, transport.NewConnHandler(newOrchestrator))

	fmt.Printf("mdprobot listening on %s\n", addr)
	return http.ListenAndServe(addr, mux)
}

func main() {
	if err := runApp(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
