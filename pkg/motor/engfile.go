package motor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ThrustSample is one (time, thrust) row of a parsed thrust curve.
type ThrustSample struct {
	Time   float64 // seconds from ignition
	Thrust float64 // newtons
}

// Definition is the immutable content of a parsed .eng motor data file: a
// seven-field whitespace-separated header followed by time/thrust rows
// terminated by a zero-thrust sample. Once parsed it is never mutated.
type Definition struct {
	Designation      string
	DiameterM        float64
	LengthM          float64
	Delays           string
	PropellantMassKg float64
	TotalMassKg      float64
	Manufacturer     string
	Thrust           []ThrustSample
}

// ParseEngFile reads a RASP-style .eng motor data file from path.
func ParseEngFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseEng(f)
}

// ParseEng reads a .eng-formatted motor definition from r. Comment lines
// begin with ";". The first non-comment line is the seven-field header
// (designation, diameter mm, length mm, delays, propellant mass kg, total
// mass kg, manufacturer); every line after it is a "time thrust" row, in
// seconds and newtons, until a zero-thrust row terminates the curve.
func ParseEng(r io.Reader) (*Definition, error) {
	scanner := bufio.NewScanner(r)
	var def Definition
	headerSeen := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		fields := strings.Fields(line)

		if !headerSeen {
			if len(fields) != 7 {
				return nil, fmt.Errorf("motor: malformed header line %q: want 7 fields, got %d", line, len(fields))
			}
			diameterMM, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("motor: invalid diameter %q: %w", fields[1], err)
			}
			lengthMM, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("motor: invalid length %q: %w", fields[2], err)
			}
			propMass, err := strconv.ParseFloat(fields[4], 64)
			if err != nil {
				return nil, fmt.Errorf("motor: invalid propellant mass %q: %w", fields[4], err)
			}
			totalMass, err := strconv.ParseFloat(fields[5], 64)
			if err != nil {
				return nil, fmt.Errorf("motor: invalid total mass %q: %w", fields[5], err)
			}
			def.Designation = fields[0]
			def.DiameterM = diameterMM / 1000.0
			def.LengthM = lengthMM / 1000.0
			def.Delays = fields[3]
			def.PropellantMassKg = propMass
			def.TotalMassKg = totalMass
			def.Manufacturer = fields[6]
			headerSeen = true
			continue
		}

		if len(fields) != 2 {
			return nil, fmt.Errorf("motor: malformed thrust row %q: want 2 fields, got %d", line, len(fields))
		}
		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("motor: invalid sample time %q: %w", fields[0], err)
		}
		thrust, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("motor: invalid sample thrust %q: %w", fields[1], err)
		}
		def.Thrust = append(def.Thrust, ThrustSample{Time: t, Thrust: thrust})
		if thrust == 0 && len(def.Thrust) > 1 {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !headerSeen {
		return nil, fmt.Errorf("motor: missing header line")
	}
	if len(def.Thrust) < 2 {
		return nil, fmt.Errorf("motor: thrust curve needs at least two samples")
	}
	return &def, nil
}

// BurnTime returns the time of the last tabulated thrust sample.
func (d *Definition) BurnTime() float64 {
	if len(d.Thrust) == 0 {
		return 0
	}
	return d.Thrust[len(d.Thrust)-1].Time
}
