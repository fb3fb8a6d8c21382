package main

import (
	"flag"

	"NFTAuctionEngine/src/app"
	"NFTAuctionEngine/src/config"
	"NFTAuctionEngine/src/router"
	"NFTAuctionEngine/src/service/svc"
)

const (
	defaultConfigPath = "./config/config.toml"
)

func main() {
	conf := flag.String("conf", defaultConfigPath, "conf file path")
	flag.Parse()
	c, err := config.UnmarshalConfig(*conf)
	if err != nil {
		panic(err)
	}

	if c.Auction.MaxFeeBps <= 0 || c.Auction.MaxFeeBps > 10000 {
		panic("invalid auction.max_fee_bps config")
	}
	if len(c.Auction.Admins) == 0 {
		panic("auction.admins must not be empty")
	}

	serverCtx, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}

	r := router.NewRouter(serverCtx)
	app := app.NewPlatform(c, r, serverCtx)
	app.Start()
}
