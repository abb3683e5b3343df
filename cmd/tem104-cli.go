package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/openmetering/tem104"
	"go.bug.st/serial"
)

func main() {
	var err error
	var help bool
	var client *tem104.Client
	var config *tem104.Configuration
	var target string
	var speed int
	var dataBits int
	var parity string
	var stopBits string
	var timeout string
	var address uint
	var variant string

	flag.StringVar(&target, "target", "", "target device to connect to (e.g. tcp://somehost:5009 or serial:///dev/ttyUSB0) [required]")
	flag.IntVar(&speed, "speed", 9600, "serial link speed in bps")
	flag.IntVar(&dataBits, "data-bits", 8, "number of bits per character on the serial link")
	flag.StringVar(&parity, "parity", "none", "parity bit <none|even|odd> on the serial link")
	flag.StringVar(&stopBits, "stop-bits", "1", "number of stop bits <1|2> on the serial link")
	flag.StringVar(&timeout, "timeout", "", "per-exchange timeout (defaults to 2s serial, 5s tcp)")
	flag.UintVar(&address, "address", 1, "device address to use")
	flag.StringVar(&variant, "variant", "", "force a device variant instead of auto-identifying "+
		"<ArvasLegacy|ArvasLegacy1|Tesmart|ArvasM|ArvasM1>")
	flag.BoolVar(&help, "help", false, "show a help message")
	flag.Parse()

	if help {
		displayHelp()
		os.Exit(0)
	}

	if target == "" {
		fmt.Printf("no target specified, please use --target\n")
		os.Exit(1)
	}

	if address == 0 || address > 247 {
		fmt.Printf("device address should be between 1 and 247\n")
		os.Exit(1)
	}

	config = &tem104.Configuration{
		URL:      target,
		Speed:    speed,
		DataBits: dataBits,
		Address:  uint8(address),
	}

	switch parity {
	case "none":
		config.Parity = serial.NoParity
	case "odd":
		config.Parity = serial.OddParity
	case "even":
		config.Parity = serial.EvenParity
	default:
		fmt.Printf("unknown parity setting '%s' (should be one of none, odd or even)\n",
			parity)
		os.Exit(1)
	}

	switch stopBits {
	case "1":
		config.StopBits = serial.OneStopBit
	case "2":
		config.StopBits = serial.TwoStopBits
	default:
		fmt.Printf("invalid stop bits setting '%s' (should be either 1 or 2)\n",
			stopBits)
		os.Exit(1)
	}

	if timeout != "" {
		config.Timeout, err = time.ParseDuration(timeout)
		if err != nil {
			fmt.Printf("failed to parse timeout setting '%s': %v\n", timeout, err)
			os.Exit(1)
		}
	}

	if variant != "" {
		config.Variant, err = parseVariant(variant)
		if err != nil {
			fmt.Printf("unknown variant '%s'\n", variant)
			os.Exit(1)
		}
	}

	client, err = tem104.NewClient(config)
	if err != nil {
		fmt.Printf("failed to create client: %v\n", err)
		os.Exit(1)
	}

	err = client.Open()
	if err != nil {
		fmt.Printf("failed to connect to %s: %v\n", target, err)
		os.Exit(2)
	}
	defer client.Close()

	rec, err := client.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read failed: %v\n", err)
		os.Exit(3)
	}

	printRecord(rec)
}

func parseVariant(s string) (tem104.Variant, error) {
	for _, v := range []tem104.Variant{
		tem104.VariantArvasLegacy,
		tem104.VariantArvasLegacy1,
		tem104.VariantTesmart,
		tem104.VariantArvasM,
		tem104.VariantArvasM1,
	} {
		if v.String() == s {
			return v, nil
		}
	}
	return tem104.VariantUnknown, tem104.ErrUnknownVariant
}

func printRecord(rec *tem104.Record) {
	fmt.Printf("variant:       %v\n", rec.Variant)
	fmt.Printf("status:        %v\n", rec.Status)
	if rec.Time != nil {
		fmt.Printf("device time:   %s\n", rec.Time.Format("2006-01-02 15:04:05"))
	}
	printField("energy Q", rec.EnergyQ, "Gcal")
	printField("mass M1", rec.MassM1, "t")
	printField("volume V1", rec.VolumeV1, "m3")
	printField("volume V2", rec.VolumeV2, "m3")
	printField("temp T1", rec.TempT1, "degC")
	printField("temp T2", rec.TempT2, "degC")
	printField("flow G1", rec.FlowG1, "m3/h")
	printField("flow G2", rec.FlowG2, "m3/h")
	if rec.OpSeconds != nil {
		hours, _ := rec.OperatingHours()
		fmt.Printf("op time:       %d s (%.1f h)\n", *rec.OpSeconds, hours)
	}
}

func printField(name string, v *float64, unit string) {
	if v == nil {
		return
	}
	fmt.Printf("%-13s %.4f %s\n", name+":", *v, unit)
}

func displayHelp() {
	fmt.Printf(
		"tem104-cli reads live values from a TEM-104 family heat meter.\n\n" +
			"usage:\n" +
			"  tem104-cli --target <target> [--address <addr>] [--variant <tag>] [options]\n\n" +
			"targets:\n" +
			"  tcp://<host>[:port]      remote device behind a serial/ethernet bridge\n" +
			"                           (port defaults to 5009)\n" +
			"  serial://<device>        local serial link, e.g. serial:///dev/ttyUSB0\n\n" +
			"The device variant is auto-detected through an Identify exchange unless\n" +
			"--variant forces a known tag. All readable fields are printed; fields the\n" +
			"device failed to serve are omitted.\n\n" +
			"options:\n")
	flag.PrintDefaults()
}
