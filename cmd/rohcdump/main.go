// Command rohcdump is a smoke-test tool for the ipprofile package: it
// reads a file of hex-encoded ROHC packets (one per line, '#' comments
// and blank lines ignored), classifies each with
// [ipprofile.DetectPacketType], and for UOR-2 / IR-DYN lines attempts
// the corresponding extension-3 or dynamic-chain parse, printing what
// it decoded or why it failed.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/rohcware/rohc-ip/ipprofile"
	"github.com/rohcware/rohc-ip/ipprofile/iphdr"
	rohclog "github.com/rohcware/rohc-ip/log"
)

func main() {
	strict := flag.Bool("strict", false, "enable strict_decompressor diagnostics")
	develop := flag.Bool("develop", false, "use the development (verbose, source-annotated) log formatter")
	flag.Parse()

	logger := rohclog.Console()
	if *develop {
		logger = rohclog.Develop()
	}
	rohclog.SetDefault(logger)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rohcdump [-strict] [-develop] <packets-file>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *strict, logger); err != nil {
		logger.Error("rohcdump failed", "error", err)
		os.Exit(1)
	}
}

func run(path string, strict bool, logger *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ctx := ipprofile.NewContext(0, ipprofile.Config{StrictDecompressor: strict}, logger)
	ctx.FlagsFieldsParser = iphdr.Parser{}
	ctx.OuterIp = ipprofile.IPHeaderState{IsIPv4: true, RND: false}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pkt, err := hex.DecodeString(line)
		if err != nil {
			logger.Error("malformed hex", "line", lineNo, "error", err)
			continue
		}

		dump(logger, ctx, lineNo, pkt)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func dump(logger *slog.Logger, ctx *ipprofile.Context, lineNo int, pkt []byte) {
	pt := ipprofile.DetectPacketType(pkt)
	logger.Info("packet", "line", lineNo, "type", pt.String(), "bytes", len(pkt))

	if len(pkt) == 0 {
		return
	}
	rest := pkt[1:]

	switch pt {
	case ipprofile.IRDyn:
		var bits ipprofile.ExtractedBits
		n, err := ctx.ParseDynNextHdr(rest, &bits)
		if err != nil {
			logger.Warn("dynamic-chain parse failed", "line", lineNo, "error", err)
			return
		}
		logger.Info("dynamic chain", "line", lineNo, "consumed", n, "sn", bits.Sn)

	case ipprofile.UOR2:
		var bits ipprofile.ExtractedBits
		bits.MultipleIp = ctx.MultipleIp
		n, err := ctx.ParseExt3(rest, &bits, ctx)
		if err != nil {
			logger.Warn("extension-3 parse failed", "line", lineNo, "error", err)
			return
		}
		logger.Info("extension 3", "line", lineNo, "consumed", n, "mode", bits.Mode.String())

	default:
	}
}
