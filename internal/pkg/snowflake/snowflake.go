package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// Generator 给没有自带 id 的反馈生成记录 id。
// surface 表示接入面，不同接入面的 id 空间互不重叠。
type Generator interface {
	Generate(surface uint) (ID, error)
}

type CustomSnowFlake struct {
	// 键为接入面编号
	nodes syncx.Map[uint, *snowflake.Node]
}

const (
	maxNode    uint = 31
	maxSurface uint = 31
)

var (
	ErrExceedNode     = errors.New("node 超出限制")
	ErrExceedSurface  = errors.New("接入面超出限制")
	ErrUnknownSurface = errors.New("未知的接入面")
)

// +-------------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit Surface ID | 5 Bit NodeID  |   12 Bit Sequence ID |
// +-------------------------------------------------------------------------------------------+

// nodeId 表示第几个节点，surfaces 表示接入面个数，从 0 开始编号，最多 32 个
func NewCustomSnowFlake(nodeId uint, surfaces uint) (*CustomSnowFlake, error) {
	nodeMap := syncx.Map[uint, *snowflake.Node]{}
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w", ErrExceedNode)
	}
	if surfaces > maxSurface+1 {
		return nil, fmt.Errorf("%w", ErrExceedSurface)
	}
	for i := 0; i < int(surfaces); i++ {
		nid := (i << 5) | int(nodeId)
		n, err := snowflake.NewNode(int64(nid))
		if err != nil {
			return nil, err
		}
		nodeMap.Store(uint(i), n)
	}
	return &CustomSnowFlake{
		nodes: nodeMap,
	}, nil
}

type ID int64

func (c *CustomSnowFlake) Generate(surface uint) (ID, error) {
	n, ok := c.nodes.Load(surface)
	if !ok {
		return 0, fmt.Errorf("%w", ErrUnknownSurface)
	}
	id := n.Generate()
	return ID(id), nil
}

func (f ID) SurfaceID() uint {
	node := snowflake.ID(f).Node()
	return uint(node >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}
