package vectornn

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osushkov/vectornn/executor"
	"github.com/osushkov/vectornn/layered"
)

// WriteWeights writes the weights of the Network to w. Each row of each layer is written on its own
// line, with every value followed by a single space; each layer is followed by an empty line.
// Values are formatted with up to 6 significant digits.
func (net *Network) WriteWeights(w io.Writer) error {
	return WriteWeights(w, net.weights)
}

// WriteWeights writes any set of matrices in the same format as (*Network).WriteWeights
func WriteWeights(w io.Writer, ws *layered.Set) error {
	bw := bufio.NewWriter(w)

	for i := 0; i < ws.Len(); i++ {
		m := ws.Layer(i)
		for r := 0; r < m.Rows(); r++ {
			for _, v := range m.Row(r) {
				bw.WriteString(strconv.FormatFloat(float64(v), 'g', 6, 32))
				bw.WriteByte(' ')
			}
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrapf(err, "Failed to write weights")
	}

	return nil
}

// ReadWeights parses the format given by WriteWeights. All rows of a layer must have the same
// number of values. The final empty line may be omitted.
func ReadWeights(r io.Reader) (*layered.Set, error) {
	ws := new(layered.Set)

	var rows [][]float32
	endLayer := func() {
		if len(rows) == 0 {
			return
		}

		m := layered.NewMatrix(len(rows), len(rows[0]))
		for i := range rows {
			copy(m.Row(i), rows[i])
		}
		ws.Append(m)
		rows = nil
	}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			endLayer()
			continue
		}

		row := make([]float32, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return nil, errors.Wrapf(err, "Bad value on line %d", line)
			}
			row[i] = float32(v)
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, errors.Errorf("Line %d has %d values, previous rows of the layer have %d", line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "Failed to read weights")
	}

	endLayer()

	if ws.Len() == 0 {
		return nil, errors.Errorf("No weights found")
	}

	return ws, nil
}

// LoadWeights replaces the weights of the Network with those read from r, which must have the same
// shapes.
func (net *Network) LoadWeights(r io.Reader) error {
	ws, err := ReadWeights(r)
	if err != nil {
		return err
	}

	if !ws.SameShape(net.weights) {
		return errors.Errorf("Loaded weights do not match the shape of the network (sizes %v)", net.sizes)
	}

	net.weights = ws
	return nil
}

// Save writes the weights of the Network to the file at 'path'.
//
// if 'overwrite' is false and the file already exists, Save will return error.
func (net *Network) Save(path string, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0600)
	if err != nil {
		return errors.Wrapf(err, "Can't save network to %q", path)
	}

	if err = net.WriteWeights(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Load creates a Network from weights saved at 'path' by Save.
func Load(pool *executor.Pool, path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network from %q", path)
	}

	defer f.Close()

	ws, err := ReadWeights(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network from %q", path)
	}

	return NewFromWeights(pool, ws)
}
