package synth

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/fpgaroute/fpgaroute/fabric"
)

type yosysFile struct {
	Modules map[string]yosysModule `json:"modules"`
}

type yosysModule struct {
	Ports map[string]yosysPort `json:"ports"`
	Cells map[string]yosysCell `json:"cells"`
}

type yosysPort struct {
	Direction string `json:"direction"`
	Bits      []int  `json:"bits"`
}

type yosysCell struct {
	Type        string                     `json:"type"`
	Parameters  map[string]json.RawMessage `json:"parameters"`
	Connections map[string][]int           `json:"connections"`
}

// pendingSink is a not-yet-wired edge target, keyed by net id until every
// cell and port has been read and every net's driver is known.
type pendingSink struct {
	node          *Node
	kind          EdgeKind
	lutInput      fabric.LUTInput
	flipFlopInput FlipFlopInput
}

// ParseYosysJSON decodes a single-module Yosys-style JSON netlist into a
// design Graph. If the file describes more than one module, the
// lexicographically first module name is read (Yosys JSON has no inherent
// module order once decoded).
func ParseYosysJSON(data []byte) (*Graph, error) {
	var file yosysFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("synth: decode netlist: %w", err)
	}
	if len(file.Modules) == 0 {
		return nil, fmt.Errorf("synth: netlist contains no modules")
	}

	moduleName := firstModuleName(file.Modules)
	module := file.Modules[moduleName]

	g := NewGraph()
	netSources := make(map[int]*Node)
	netSinks := make(map[int][]pendingSink)

	if err := readPorts(g, module, netSources, netSinks); err != nil {
		return nil, err
	}
	if err := readCells(g, module, netSources, netSinks); err != nil {
		return nil, err
	}
	if err := wireNets(g, netSources, netSinks); err != nil {
		return nil, err
	}
	return g, nil
}

func firstModuleName(modules map[string]yosysModule) string {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names[0]
}

func readPorts(g *Graph, module yosysModule, netSources map[int]*Node, netSinks map[int][]pendingSink) error {
	for _, name := range sortedStringKeys(module.Ports) {
		port := module.Ports[name]
		var direction ModulePortDirection
		switch port.Direction {
		case "input":
			direction = PortInput
		case "output":
			direction = PortOutput
		default:
			return fmt.Errorf("synth: port %q has unknown direction %q", name, port.Direction)
		}

		for i, netID := range port.Bits {
			bitName := name
			if len(port.Bits) > 1 {
				bitName = fmt.Sprintf("%s[%d]", name, i)
			}
			node := g.AddNode(&Node{Kind: ModulePortKind, Port: ModulePort{Name: bitName, Direction: direction}})

			if direction == PortInput {
				// An input port drives the nets inside the design.
				if _, ok := netSources[netID]; ok {
					return fmt.Errorf("synth: net %d has more than one driver", netID)
				}
				netSources[netID] = node
			} else {
				netSinks[netID] = append(netSinks[netID], pendingSink{node: node, kind: ModulePortInputEdge})
			}
		}
	}
	return nil
}

func readCells(g *Graph, module yosysModule, netSources map[int]*Node, netSinks map[int][]pendingSink) error {
	for _, name := range sortedStringKeys(module.Cells) {
		cell := module.Cells[name]
		switch cell.Type {
		case "$lut":
			if err := readLUTCell(g, name, cell, netSources, netSinks); err != nil {
				return err
			}
		case "$_DFF_P_", "$_DFF_N_":
			if err := readFlipFlopCell(g, name, cell, netSources, netSinks); err != nil {
				return err
			}
		}
	}
	return nil
}

func readLUTCell(g *Graph, name string, cell yosysCell, netSources map[int]*Node, netSinks map[int][]pendingSink) error {
	maskParam, ok := cell.Parameters["LUT"]
	if !ok {
		return fmt.Errorf("synth: LUT cell %q missing LUT parameter", name)
	}
	mask, err := decodeLUTMask(maskParam, cell.Parameters["WIDTH"])
	if err != nil {
		return fmt.Errorf("synth: LUT cell %q: %w", name, err)
	}

	inputs, ok := cell.Connections["A"]
	if !ok {
		return fmt.Errorf("synth: LUT cell %q missing A connection", name)
	}
	if len(inputs) > len(fabric.LUTInputs) {
		return fmt.Errorf("synth: LUT cell %q has %d inputs, at most %d supported", name, len(inputs), len(fabric.LUTInputs))
	}
	outputs, ok := cell.Connections["Y"]
	if !ok || len(outputs) != 1 {
		return fmt.Errorf("synth: LUT cell %q must have exactly one Y output", name)
	}

	node := g.AddNode(&Node{Kind: LookUpTableKind, LUT: LookUpTable{Name: name, Mask: mask}})
	for i, netID := range inputs {
		netSinks[netID] = append(netSinks[netID], pendingSink{node: node, kind: LUTInputEdge, lutInput: fabric.LUTInputs[i]})
	}
	if _, ok := netSources[outputs[0]]; ok {
		return fmt.Errorf("synth: net %d has more than one driver", outputs[0])
	}
	netSources[outputs[0]] = node
	return nil
}

func readFlipFlopCell(g *Graph, name string, cell yosysCell, netSources map[int]*Node, netSinks map[int][]pendingSink) error {
	trigger := RisingEdge
	if cell.Type == "$_DFF_N_" {
		trigger = FallingEdge
	}

	clockNets, ok := cell.Connections["C"]
	if !ok || len(clockNets) != 1 {
		return fmt.Errorf("synth: DFF cell %q must have exactly one C connection", name)
	}
	dataNets, ok := cell.Connections["D"]
	if !ok || len(dataNets) != 1 {
		return fmt.Errorf("synth: DFF cell %q must have exactly one D connection", name)
	}
	outputNets, ok := cell.Connections["Q"]
	if !ok || len(outputNets) != 1 {
		return fmt.Errorf("synth: DFF cell %q must have exactly one Q connection", name)
	}

	node := g.AddNode(&Node{Kind: FlipFlopKind, FF: FlipFlop{Name: name, Trigger: trigger}})
	netSinks[clockNets[0]] = append(netSinks[clockNets[0]], pendingSink{node: node, kind: FlipFlopInputEdge, flipFlopInput: Clock})
	netSinks[dataNets[0]] = append(netSinks[dataNets[0]], pendingSink{node: node, kind: FlipFlopInputEdge, flipFlopInput: Data})
	if _, ok := netSources[outputNets[0]]; ok {
		return fmt.Errorf("synth: net %d has more than one driver", outputNets[0])
	}
	netSources[outputNets[0]] = node
	return nil
}

func wireNets(g *Graph, netSources map[int]*Node, netSinks map[int][]pendingSink) error {
	netIDs := make([]int, 0, len(netSinks))
	for netID := range netSinks {
		netIDs = append(netIDs, netID)
	}
	sort.Ints(netIDs)

	for _, netID := range netIDs {
		source, ok := netSources[netID]
		if !ok {
			return &ModulePortUndrivenError{NetID: netID}
		}
		for _, sink := range netSinks[netID] {
			g.AddEdge(&Edge{
				Source:        source,
				Sink:          sink.node,
				Kind:          sink.kind,
				LUTInput:      sink.lutInput,
				FlipFlopInput: sink.flipFlopInput,
			})
		}
	}
	return nil
}

func sortedStringKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// decodeLUTMask decodes a Yosys LUT configuration parameter into a 16-bit
// truth-table mask. Older Yosys versions emit the mask as a bit-string
// (e.g. "1010"); newer versions emit a packed integer alongside a WIDTH
// parameter. Either form is expanded to the full 16 bits by repeating the
// decoded pattern.
func decodeLUTMask(raw json.RawMessage, widthParam json.RawMessage) (uint16, error) {
	var bitString string
	if err := json.Unmarshal(raw, &bitString); err == nil {
		return decodeLUTMaskBitString(bitString)
	}

	var n uint64
	if err := json.Unmarshal(raw, &n); err == nil {
		if widthParam == nil {
			return 0, fmt.Errorf("integer LUT mask missing WIDTH parameter")
		}
		var width uint64
		if err := json.Unmarshal(widthParam, &width); err != nil {
			return 0, fmt.Errorf("invalid WIDTH parameter: %w", err)
		}
		return expandToSixteenBits(uint16(n), int(width))
	}

	return 0, fmt.Errorf("LUT mask has unsupported parameter encoding")
}

func decodeLUTMaskBitString(s string) (uint16, error) {
	width := len(s)
	if width == 0 || width > 16 {
		return 0, fmt.Errorf("invalid LUT bit-string width %d", width)
	}
	v, err := strconv.ParseUint(s, 2, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid LUT bit-string %q: %w", s, err)
	}
	return expandToSixteenBits(uint16(v), width)
}

func expandToSixteenBits(raw uint16, width int) (uint16, error) {
	if width <= 0 || width > 16 || 16%width != 0 {
		return 0, fmt.Errorf("LUT mask width %d does not evenly divide 16", width)
	}
	repeatCount := 16 / width
	acc := raw
	for i := 1; i < repeatCount; i++ {
		acc = (acc << uint(width)) | raw
	}
	return acc, nil
}
