package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"predictionMart/internal/finance"
	"predictionMart/internal/logger"
)

func main() {
	price := flag.String("price", finance.DefaultPrice, "share price between 0.01 and 0.99")
	investment := flag.String("investment", finance.DefaultInvestment, "amount invested, in -currency")
	fee := flag.String("fee", finance.DefaultFeePercent, "fee percent charged on entry and on payout (0-2)")
	currency := flag.String("currency", string(finance.DefaultCurrency), "display currency: USD or INR")
	chartPath := flag.String("chart", "", "write the ROI chart to this file")
	format := flag.String("format", "", "chart format: png or svg (default: from -chart extension)")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	log, err := logger.New(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	calc, err := finance.Calculate(finance.ParseInput(*price, *investment, *fee, *currency))
	var verr *finance.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(os.Stderr, "Fix inputs:")
		for _, p := range verr.Problems {
			fmt.Fprintln(os.Stderr, "  -", p)
		}
		os.Exit(2)
	}
	if err != nil {
		log.Fatal("calculate", zap.Error(err))
	}

	fmt.Println(calc.Table.Text())

	if *chartPath == "" {
		return
	}
	f := *format
	if f == "" {
		f = filepath.Ext(*chartPath)
	}
	out, err := finance.ParseFormat(f)
	if err != nil {
		log.Fatal("chart format", zap.Error(err))
	}
	img, err := finance.RenderChart(calc.Chart, out)
	if err != nil {
		log.Fatal("render chart", zap.Error(err))
	}
	if err := os.WriteFile(*chartPath, img, 0o644); err != nil {
		log.Fatal("write chart", zap.String("path", *chartPath), zap.Error(err))
	}
	log.Debug("chart written", zap.String("path", *chartPath), zap.String("format", out), zap.Int("points", len(calc.Series)))
}
