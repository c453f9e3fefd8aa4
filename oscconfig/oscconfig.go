package oscconfig

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Command is one raw OSC line: an address and its arguments with quotes
// stripped.
type Command struct {
	Address string
	Args    []string
}

// SpeakerEntry is one speaker of a bus layout. Azimuth and elevation are in
// degrees, distance in meters, delay in seconds, gain in dB.
type SpeakerEntry struct {
	ID        int
	Azimuth   float64
	Elevation float64
	Distance  float64
	Delay     float64
	Gain      float64
}

// SpeakerLayout is the geometry declared for one bus.
type SpeakerLayout struct {
	BusID    int
	Format   string
	Name     string
	Speakers []SpeakerEntry
}

// Config is the parsed OSC dump: every command in file order plus the
// speaker layouts assembled from bus-scoped addresses.
type Config struct {
	Commands      []Command
	SpeakerArrays []SpeakerLayout
}

// ParseFile reads and parses an OSC dump file.
func ParseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("oscconfig: %w", err)
	}

	return ParseText(string(data))
}

// ParseText parses an OSC dump from a string.
func ParseText(text string) (*Config, error) {
	cfg := &Config{}

	busIndex := map[int]int{} // bus id -> index into cfg.SpeakerArrays

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tokens := tokenize(line)
		if len(tokens) == 0 {
			continue
		}

		cmd := Command{Address: tokens[0], Args: tokens[1:]}
		cfg.Commands = append(cfg.Commands, cmd)

		if err := cfg.applyBusCommand(cmd, busIndex); err != nil {
			return nil, fmt.Errorf("oscconfig: line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("oscconfig: %w", err)
	}

	return cfg, nil
}

// applyBusCommand folds /bus/N/... commands into the speaker layouts.
// Non-bus addresses and unknown bus sub-addresses are ignored here; they
// remain available in Commands.
func (c *Config) applyBusCommand(cmd Command, busIndex map[int]int) error {
	parts := strings.Split(strings.TrimPrefix(cmd.Address, "/"), "/")
	if len(parts) < 3 || parts[0] != "bus" {
		return nil
	}

	busID, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}

	idx, ok := busIndex[busID]
	if !ok {
		idx = len(c.SpeakerArrays)
		busIndex[busID] = idx
		c.SpeakerArrays = append(c.SpeakerArrays, SpeakerLayout{BusID: busID})
	}

	layout := &c.SpeakerArrays[idx]

	switch {
	case len(parts) == 3 && parts[2] == "format":
		if len(cmd.Args) > 0 {
			layout.Format = cmd.Args[0]
		}
	case len(parts) == 3 && parts[2] == "name":
		if len(cmd.Args) > 0 {
			layout.Name = cmd.Args[0]
		}
	case len(parts) == 4 && parts[2] == "speakers" && parts[3] == "aed":
		return layout.setAED(cmd.Args)
	case len(parts) == 5 && parts[2] == "speaker":
		return layout.setSpeakerParam(parts[3], parts[4], cmd.Args)
	}

	return nil
}

// setAED replaces the layout's speakers from a flat azimuth/elevation/
// distance triple list.
func (l *SpeakerLayout) setAED(args []string) error {
	if len(args)%3 != 0 {
		return fmt.Errorf("bus %d: aed list has %d values, want a multiple of 3", l.BusID, len(args))
	}

	count := len(args) / 3
	speakers := make([]SpeakerEntry, 0, count)

	for i := 0; i < count; i++ {
		az, err := strconv.ParseFloat(args[3*i], 64)
		if err != nil {
			return fmt.Errorf("bus %d speaker %d: bad azimuth %q", l.BusID, i+1, args[3*i])
		}

		el, err := strconv.ParseFloat(args[3*i+1], 64)
		if err != nil {
			return fmt.Errorf("bus %d speaker %d: bad elevation %q", l.BusID, i+1, args[3*i+1])
		}

		dist, err := strconv.ParseFloat(args[3*i+2], 64)
		if err != nil {
			return fmt.Errorf("bus %d speaker %d: bad distance %q", l.BusID, i+1, args[3*i+2])
		}

		speakers = append(speakers, SpeakerEntry{
			ID:        i + 1,
			Azimuth:   az,
			Elevation: el,
			Distance:  dist,
		})
	}

	l.Speakers = speakers

	return nil
}

// setSpeakerParam patches delay or gain of one 1-based speaker. Addresses
// for speakers the aed list never declared are ignored rather than errors,
// matching the permissive handling of the rest of the dump.
func (l *SpeakerLayout) setSpeakerParam(idStr, param string, args []string) error {
	id, err := strconv.Atoi(idStr)
	if err != nil || len(args) == 0 {
		return nil
	}

	if id < 1 || id > len(l.Speakers) {
		return nil
	}

	val, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("bus %d speaker %d: bad %s %q", l.BusID, id, param, args[0])
	}

	switch param {
	case "delay":
		l.Speakers[id-1].Delay = val
	case "gain":
		l.Speakers[id-1].Gain = val
	}

	return nil
}

// tokenize splits a line on whitespace, honoring double-quoted arguments.
func tokenize(line string) []string {
	var tokens []string

	var cur strings.Builder

	inQuote := false
	flushed := true

	flush := func() {
		if !flushed {
			tokens = append(tokens, cur.String())
			cur.Reset()

			flushed = true
		}
	}

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			flushed = false
		case !inQuote && (r == ' ' || r == '\t'):
			flush()
		default:
			cur.WriteRune(r)

			flushed = false
		}
	}

	flush()

	return tokens
}
