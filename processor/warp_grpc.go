package processor

import (
	"fmt"
	"log"
	"math/rand"

	"golang.org/x/net/context"
	"google.golang.org/grpc"

	"github.com/nci/sarprep/utils"
	pb "github.com/nci/sarprep/worker/rasterservice"
)

const DefaultRecvMsgSize = 100 * 1024 * 1024

// GRPCWarper delegates cropping/resampling to a pool of warp worker
// processes. Worker selection is randomised across the configured
// addresses; offline workers are skipped as long as at least one
// connection comes up.
type GRPCWarper struct {
	Addresses          []string
	MaxGrpcRecvMsgSize int
	Verbose            bool
}

func NewGRPCWarper(addresses []string, maxGrpcRecvMsgSize int, verbose bool) *GRPCWarper {
	if maxGrpcRecvMsgSize <= 0 {
		maxGrpcRecvMsgSize = DefaultRecvMsgSize
	}
	return &GRPCWarper{Addresses: addresses, MaxGrpcRecvMsgSize: maxGrpcRecvMsgSize, Verbose: verbose}
}

func (w *GRPCWarper) Warp(ctx context.Context, ds *Dataset, exts Extents, xstep, ystep float64) (*Dataset, error) {
	opts := []grpc.DialOption{
		grpc.WithInsecure(),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(w.MaxGrpcRecvMsgSize)),
	}

	var conns []*grpc.ClientConn
	for _, worker := range w.Addresses {
		conn, err := grpc.Dial(worker, opts...)
		if err != nil {
			log.Printf("gRPC connection problem: %v", err)
			continue
		}
		defer conn.Close()
		conns = append(conns, conn)
	}

	if len(conns) == 0 {
		return nil, fmt.Errorf("all gRPC warp workers offline")
	}

	if w.Verbose {
		log.Printf("warp_grpc: %v -> extents (%v, %v, %v, %v)", ds.Path, exts.XFirst, exts.YFirst, exts.XLast, exts.YLast)
	}

	c := pb.NewWarperClient(conns[rand.Intn(len(conns))])
	res, err := c.Process(ctx, WarpRequestFromDataset(ds, exts, xstep, ystep))
	if err != nil {
		return nil, fmt.Errorf("gRPC warp failed for %v: %v", ds.Path, err)
	}
	if len(res.Error) > 0 && res.Error != "OK" {
		return nil, fmt.Errorf("warp worker error for %v: %v", ds.Path, res.Error)
	}

	return DatasetFromWarpResult(ds.Path, res)
}

// WarpRequestFromDataset flattens a dataset into the wire message
// consumed by warp workers.
func WarpRequestFromDataset(ds *Dataset, exts Extents, xstep, ystep float64) *pb.WarpRequest {
	req := &pb.WarpRequest{
		Path:       ds.Path,
		Geot:       ds.GeoT[:],
		Width:      int32(ds.Width),
		Height:     int32(ds.Height),
		DstExtents: []float64{exts.XFirst, exts.YFirst, exts.XLast, exts.YLast},
		DstXstep:   xstep,
		DstYstep:   ystep,
	}
	for _, band := range ds.Bands {
		req.Bands = append(req.Bands, &pb.Band{NameSpace: band.NameSpace, Data: band.Data, NoData: band.NoData})
	}
	return req
}

// DatasetFromWarpResult rebuilds a dataset from a warp worker response.
func DatasetFromWarpResult(path string, res *pb.WarpResult) (*Dataset, error) {
	if len(res.Geot) != 6 {
		return nil, fmt.Errorf("warp result for %v carries a malformed geotransform of %d coefficients", path, len(res.Geot))
	}

	var geot utils.GeoTransform
	copy(geot[:], res.Geot)

	out := &Dataset{Path: path, GeoT: geot, Width: int(res.Width), Height: int(res.Height)}
	for _, band := range res.Bands {
		if len(band.Data) != out.Width*out.Height {
			return nil, fmt.Errorf("warp result band %v for %v carries %d samples for a %dx%d grid",
				band.NameSpace, path, len(band.Data), out.Width, out.Height)
		}
		out.Bands = append(out.Bands, &utils.Float64Raster{
			NameSpace: band.NameSpace,
			Data:      band.Data,
			Height:    out.Height,
			Width:     out.Width,
			NoData:    band.NoData,
		})
	}
	return out, nil
}
