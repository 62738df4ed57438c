package generator

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
	"golang.org/x/text/encoding/ianaindex"
)

// EncodeOptions are the fixed knobs handed to the QR encoder.
type EncodeOptions struct {
	ErrorCorrection string // "L", "M", "Q" or "H"
	Charset         string // IANA name, e.g. "utf-8"
	Margin          int    // quiet zone, in modules
}

// SymbolMatrix is the scaled QR symbol: Width x Height cells, true = dark.
type SymbolMatrix struct {
	Width  int
	Height int
	bits   []bool
}

func newSymbolMatrix(width, height int) *SymbolMatrix {
	return &SymbolMatrix{Width: width, Height: height, bits: make([]bool, width*height)}
}

// Get reports whether the cell at (x, y) is dark.
func (m *SymbolMatrix) Get(x, y int) bool {
	return m.bits[y*m.Width+x]
}

func (m *SymbolMatrix) setRegion(left, top, width, height int) {
	for y := top; y < top+height; y++ {
		row := m.bits[y*m.Width:]
		for x := left; x < left+width; x++ {
			row[x] = true
		}
	}
}

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// ParseErrorCorrection maps an "L"/"M"/"Q"/"H" level onto the encoder's
// recovery level.
func ParseErrorCorrection(level string) (qrcode.RecoveryLevel, error) {
	l, ok := recoveryLevels[strings.ToUpper(level)]
	if !ok {
		return 0, fmt.Errorf("unknown error correction level %q", level)
	}
	return l, nil
}

// Transcode converts content into the named character set. Runes the
// charset cannot represent are an error.
func Transcode(content, charset string) (string, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return "", fmt.Errorf("unknown charset %q: %w", charset, err)
	}
	if enc == nil {
		return "", fmt.Errorf("charset %q is not supported", charset)
	}
	out, err := enc.NewEncoder().String(content)
	if err != nil {
		return "", fmt.Errorf("content not representable in %s: %w", charset, err)
	}
	return out, nil
}

// Encode builds the QR symbol for content and scales it onto a width x height
// matrix. The scale is the largest integer multiple that fits the symbol plus
// its margin; the symbol is then centered. If the symbol plus margin is wider
// than requested the matrix grows to fit it.
func Encode(content string, opts EncodeOptions, width, height int) (*SymbolMatrix, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: found empty contents", ErrEncoding)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: requested dimensions are too small: %dx%d", ErrEncoding, width, height)
	}
	level, err := ParseErrorCorrection(opts.ErrorCorrection)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	data, err := Transcode(content, opts.Charset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	qr, err := qrcode.New(data, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	qr.DisableBorder = true
	modules := qr.Bitmap()

	inputHeight := len(modules)
	inputWidth := 0
	if inputHeight > 0 {
		inputWidth = len(modules[0])
	}
	qrWidth := inputWidth + opts.Margin*2
	qrHeight := inputHeight + opts.Margin*2
	outputWidth := max(width, qrWidth)
	outputHeight := max(height, qrHeight)

	multiple := min(outputWidth/qrWidth, outputHeight/qrHeight)
	leftPadding := (outputWidth - inputWidth*multiple) / 2
	topPadding := (outputHeight - inputHeight*multiple) / 2

	out := newSymbolMatrix(outputWidth, outputHeight)
	for inputY, row := range modules {
		outputY := topPadding + inputY*multiple
		for inputX, dark := range row {
			if dark {
				out.setRegion(leftPadding+inputX*multiple, outputY, multiple, multiple)
			}
		}
	}
	return out, nil
}
