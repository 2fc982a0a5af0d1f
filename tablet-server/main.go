package main

import (
	"flag"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/ngaut/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tabletkv/tabletkv/config"
	"github.com/tabletkv/tabletkv/proto/pkg/txnpb"
	"github.com/tabletkv/tabletkv/tablet"
	"github.com/tabletkv/tabletkv/util/engine_util"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

var (
	configPath    = flag.String("config", "", "config file path")
	storeAddr     = flag.String("addr", "", "store address")
	authorityAddr = flag.String("authority", "", "status authority address")
)

var (
	gitHash = "None"
)

const (
	grpcInitialWindowSize     = 1 << 30
	grpcInitialConnWindowSize = 1 << 30

	subPathKV = "kv"
)

func main() {
	flag.Parse()
	conf := loadConfig()
	if *storeAddr != "" {
		conf.StoreAddr = *storeAddr
	}
	if *authorityAddr != "" {
		conf.AuthorityAddr = *authorityAddr
	}
	runtime.GOMAXPROCS(conf.MaxProcs)
	log.Info("gitHash:", gitHash)
	log.SetLevelByString(conf.LogLevel)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Infof("conf %v", conf)

	db := engine_util.CreateDB(subPathKV, &conf.Engine)
	engines := engine_util.NewEngines(db, conf.Engine.DBPath)

	ctx := tablet.NewClusterContext(conf.TabletID, tablet.StaticResolver(conf.AuthorityAddr))
	participant := tablet.NewParticipant(ctx, db, &conf.Txn)
	tabletServer := tablet.NewServer(participant)

	var alivePolicy = keepalive.EnforcementPolicy{
		MinTime:             2 * time.Second, // If a client pings more than once every 2 seconds, terminate the connection
		PermitWithoutStream: true,            // Allow pings even when there are no active streams
	}

	grpcServer := grpc.NewServer(
		grpc.KeepaliveEnforcementPolicy(alivePolicy),
		grpc.InitialWindowSize(grpcInitialWindowSize),
		grpc.InitialConnWindowSize(grpcInitialConnWindowSize),
		grpc.MaxRecvMsgSize(10*1024*1024),
		grpc.UnaryInterceptor(grpc_prometheus.UnaryServerInterceptor),
		grpc.StreamInterceptor(grpc_prometheus.StreamServerInterceptor),
	)
	txnpb.RegisterTabletTxnServer(grpcServer, tabletServer)
	grpc_prometheus.Register(grpcServer)

	l, err := net.Listen("tcp", conf.StoreAddr)
	if err != nil {
		log.Fatal(err)
	}
	handleSignal(grpcServer)
	go func() {
		log.Infof("listening on %v", conf.StatusAddr)
		http.Handle("/metrics", promhttp.Handler())
		http.HandleFunc("/status", func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})
		// The status endpoint must not take the tablet down; the grpc
		// shutdown path below still runs if this listener fails.
		err := http.ListenAndServe(conf.StatusAddr, nil)
		if err != nil {
			log.Errorf("status server: %v", err)
		}
	}()
	err = grpcServer.Serve(l)
	if err != nil {
		log.Fatal(err)
	}
	log.Info("Server stopped.")

	participant.Close()
	if err = ctx.Close(); err != nil {
		log.Fatal(err)
	}
	if err = engines.Close(); err != nil {
		log.Fatal(err)
	}
	log.Info("Engines closed.")
}

func loadConfig() *config.Config {
	conf := config.DefaultConf
	if *configPath != "" {
		_, err := toml.DecodeFile(*configPath, &conf)
		if err != nil {
			panic(err)
		}
	}
	return &conf
}

func handleSignal(grpcServer *grpc.Server) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		sig := <-sigCh
		log.Infof("Got signal [%s] to exit.", sig)
		grpcServer.Stop()
	}()
}
