package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	reuseport "github.com/kavu/go_reuseport"
	"golang.org/x/net/context"
	"google.golang.org/grpc"

	proc "github.com/nci/sarprep/processor"
	pb "github.com/nci/sarprep/worker/rasterservice"
)

type server struct {
	Pool *pb.TaskPool
}

func (s *server) Process(ctx context.Context, in *pb.WarpRequest) (*pb.WarpResult, error) {
	// buffered so a worker finishing after the client has gone away can
	// still complete its send; the channels are simply garbage collected
	rChan := make(chan *pb.WarpResult, 1)
	errChan := make(chan error, 1)

	s.Pool.AddQueue(&pb.Task{Payload: in, Resp: rChan, Error: errChan})

	select {
	case out := <-rChan:
		return out, nil
	case err := <-errChan:
		return &pb.WarpResult{}, fmt.Errorf("error in warp: %v", err)
	case <-ctx.Done():
		return &pb.WarpResult{}, ctx.Err()
	}
}

// warpTask executes one request with the in-process warper. Workers keep
// no state between tasks.
func warpTask(in *pb.WarpRequest) (*pb.WarpResult, error) {
	if len(in.Geot) != 6 {
		return nil, fmt.Errorf("warp request for %v carries a malformed geotransform of %d coefficients", in.Path, len(in.Geot))
	}
	if len(in.DstExtents) != 4 {
		return nil, fmt.Errorf("warp request for %v carries %d extent coordinates, need 4", in.Path, len(in.DstExtents))
	}

	src, err := proc.DatasetFromWarpResult(in.Path, &pb.WarpResult{
		Geot:   in.Geot,
		Width:  in.Width,
		Height: in.Height,
		Bands:  in.Bands,
	})
	if err != nil {
		return nil, err
	}

	exts := proc.Extents{
		XFirst: in.DstExtents[0],
		YFirst: in.DstExtents[1],
		XLast:  in.DstExtents[2],
		YLast:  in.DstExtents[3],
	}

	warper := &proc.LocalWarper{}
	out, err := warper.Warp(context.Background(), src, exts, in.DstXstep, in.DstYstep)
	if err != nil {
		return nil, err
	}

	res := proc.WarpRequestFromDataset(out, exts, in.DstXstep, in.DstYstep)
	return &pb.WarpResult{
		Error:  "OK",
		Geot:   res.Geot,
		Width:  res.Width,
		Height: res.Height,
		Bands:  res.Bands,
	}, nil
}

func main() {
	port := flag.Int("p", 6000, "gRPC server listening port.")
	poolSize := flag.Int("n", 8, "Maximum number of warps handled concurrently.")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	p := pb.CreateTaskPool(*poolSize, warpTask, *debug)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-signals
		os.Exit(1)
	}()

	s := grpc.NewServer()
	pb.RegisterWarperServer(s, &server{Pool: p})

	lis, err := reuseport.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	if err := s.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
