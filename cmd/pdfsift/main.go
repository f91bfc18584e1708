// Command pdfsift extracts text from a PDF file, falling back to OCR for
// scanned pages, and writes the result as plain text, DOCX or HTML.
//
// Usage:
//
//	pdfsift -input report.pdf -output report -format txt
//
// Any of -input, -output and -format left empty is prompted for
// interactively. OCR requires a binary built with the ocr tag and a local
// Tesseract installation.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pdfsift/pdfsift"
	"github.com/pdfsift/pdfsift/docx"
	"github.com/pdfsift/pdfsift/format"
	"github.com/pdfsift/pdfsift/htmldoc"
	"github.com/pdfsift/pdfsift/plaintext"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath     string
		outputBase    string
		formatName    string
		configPath    string
		language      string
		minConfidence float64
		verbose       bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to the input PDF file (prompted for when empty)")
	flag.StringVar(&outputBase, "output", "", "Output base name, without extension (prompted for when empty)")
	flag.StringVar(&formatName, "format", "", "Output format: txt, docx or html (prompted for when empty)")
	flag.StringVar(&configPath, "config", "", "Path to an optional YAML config file")
	flag.StringVar(&language, "lang", "", "OCR language(s), e.g. 'eng' or 'eng+fra'")
	flag.Float64Var(&minConfidence, "min-confidence", pdfsift.DefaultMinConfidence, "OCR word confidence threshold (0-100)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if configPath != "" {
		cfg, err := loadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("failed to load config file")
		}
		// Explicit flags take precedence over the config file.
		set := setFlags()
		if !set["format"] && cfg.Format != "" {
			formatName = cfg.Format
		}
		if !set["lang"] && cfg.OCR.Language != "" {
			language = cfg.OCR.Language
		}
		if !set["min-confidence"] && cfg.OCR.MinConfidence != 0 {
			minConfidence = cfg.OCR.MinConfidence
		}
	}

	run(inputPath, outputBase, formatName, language, minConfidence)
}

// setFlags reports which flags were given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

func run(inputPath, outputBase, formatName, language string, minConfidence float64) {
	in := bufio.NewReader(os.Stdin)

	if inputPath == "" {
		inputPath = prompt(in, "Please enter the path to the PDF file: ")
	}
	if _, err := os.Stat(inputPath); err != nil {
		log.Error().Str("path", inputPath).Msg("the file does not exist")
		return
	}
	if !looksLikePDF(inputPath) {
		log.Error().Str("path", inputPath).Msg("the file is not a PDF")
		return
	}

	configure := func() *pdfsift.Extractor {
		ext := pdfsift.Open(inputPath).MinConfidence(minConfidence)
		if language != "" {
			ext = ext.Language(language)
		}
		return ext
	}

	log.Debug().Str("path", inputPath).Msg("extracting text")
	doc, warnings, err := configure().Document()
	if err != nil {
		log.Error().Err(err).Msg("extraction failed")
		return
	}
	logWarnings(warnings)

	if doc.IsEmpty() {
		log.Info().Msg("no data was extracted")
		return
	}

	if outputBase == "" {
		outputBase = prompt(in, "Enter the desired output filename (e.g., 'report'): ")
	}
	if formatName == "" {
		formatName = prompt(in, "Choose output format (docx, txt, html): ")
	}

	outFormat := format.Parse(formatName)
	if outFormat == format.Unknown {
		log.Error().Str("format", formatName).Msg("invalid output format; supported formats are docx, txt, html")
		return
	}
	outputPath := outputBase + outFormat.Extension()

	switch outFormat {
	case format.Text:
		err = plaintext.WriteFile(outputPath, doc)
	case format.DOCX:
		err = docx.WriteFile(outputPath, doc)
	case format.HTML:
		// HTML needs positioned elements rather than assembled page text.
		elements, elemWarnings, elemErr := configure().Elements()
		if elemErr != nil {
			log.Error().Err(elemErr).Msg("element extraction failed")
			return
		}
		logWarnings(elemWarnings)
		err = htmldoc.WriteFile(outputPath, elements)
	}
	if err != nil {
		log.Error().Err(err).Str("output", outputPath).Msg("failed to write output")
		return
	}

	log.Info().Str("output", outputPath).Msg("data saved successfully")
}

// prompt reads one trimmed line from the user.
func prompt(in *bufio.Reader, message string) string {
	fmt.Print(message)
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return ""
	}
	return strings.TrimSpace(line)
}

// looksLikePDF checks the file's magic bytes.
func looksLikePDF(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	header := make([]byte, 4)
	if _, err := io.ReadFull(f, header); err != nil {
		return false
	}
	return format.IsPDF(header)
}

// logWarnings reports non-fatal extraction issues.
func logWarnings(warnings []pdfsift.Warning) {
	for _, w := range warnings {
		log.Warn().Int("page", w.Page).Str("type", string(w.Type)).Msg(w.Message)
	}
}
