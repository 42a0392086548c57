package rpcs

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/593413198/bst/container/tree"
	errs "github.com/593413198/bst/errors"
	"github.com/593413198/bst/logs"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// NodeResponse describes a node and the keys of its children
type NodeResponse struct {
	Key   int  `json:"key"`
	Left  *int `json:"left"`
	Right *int `json:"right"`
}

// InsertResponse is returned after a key is inserted or deleted
type InsertResponse struct {
	Key int `json:"key"`
	Len int `json:"len"`
}

// SuccessorResponse holds the successor of a key, nil if it has none
type SuccessorResponse struct {
	Key       int  `json:"key"`
	Successor *int `json:"successor"`
}

// WalkResponse holds the keys of a depth first walk
type WalkResponse struct {
	Order string `json:"order"`
	Keys  []int  `json:"keys"`
}

// LevelOrderResponse holds the keys of a breadth first walk grouped
// by depth
type LevelOrderResponse struct {
	Order  string  `json:"order"`
	Levels [][]int `json:"levels"`
}

// StatsResponse describes the shape of the tree. Min and Max are
// nil for an empty tree
type StatsResponse struct {
	Len      int  `json:"len"`
	MaxDepth int  `json:"maxDepth"`
	MinDepth int  `json:"minDepth"`
	Min      *int `json:"min"`
	Max      *int `json:"max"`
}

// TreeService exposes a tree over http. The tree itself is not safe
// for concurrent use, so every request takes the service lock
type TreeService struct {
	mu      sync.RWMutex
	tree    *tree.Tree
	metrics *Metrics
	logger  logs.Logger
}

// TreeServiceProps are the properties used to create a TreeService
type TreeServiceProps struct {
	Logger  logs.Logger
	Metrics *Metrics

	// Tree is served by the service. A new empty tree is used if nil
	Tree *tree.Tree
}

// NewTreeService creates a new TreeService
func NewTreeService(props TreeServiceProps) *TreeService {
	if props.Logger == nil {
		panic("logger must be set")
	}

	if props.Metrics == nil {
		panic("metrics must be set")
	}

	t := props.Tree
	if t == nil {
		t = tree.New()
	}

	s := &TreeService{
		tree:    t,
		metrics: props.Metrics,
		logger:  props.Logger.ForClass("rpcs", "TreeService"),
	}
	s.metrics.setShape(t.Len(), t.MaxDepth())

	return s
}

// Bind registers the routes of the service
func (s *TreeService) Bind(b *HttpBinder) {
	b.Bind(http.MethodPost, "/keys/{key}", "insert", HttpMiddlewareFunc(s.insert))
	b.Bind(http.MethodDelete, "/keys/{key}", "delete", HttpMiddlewareFunc(s.delete))
	b.Bind(http.MethodGet, "/keys/{key}", "search", HttpMiddlewareFunc(s.search))
	b.Bind(http.MethodGet, "/keys/{key}/successor", "successor", HttpMiddlewareFunc(s.successor))
	b.Bind(http.MethodGet, "/walks/{order}", "walk", HttpMiddlewareFunc(s.walk))
	b.Bind(http.MethodGet, "/stats", "stats", HttpMiddlewareFunc(s.stats))
}

func parseKey(req *http.Request) (int, error) {
	raw := mux.Vars(req)["key"]

	key, err := strconv.Atoi(raw)
	if err != nil {
		return 0, HttpBadRequest(req.Context(), errs.New(errs.CodeInvalidKey, "invalid key "+strconv.Quote(raw)))
	}

	return key, nil
}

func (s *TreeService) insert(req *http.Request) (interface{}, error) {
	key, err := parseKey(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree.Insert(key)
	s.metrics.setShape(s.tree.Len(), s.tree.MaxDepth())

	s.logger.Debug(req.Context(), "inserted key", logs.MapFields{"key": key, "len": s.tree.Len()})
	return InsertResponse{Key: key, Len: s.tree.Len()}, nil
}

func (s *TreeService) delete(req *http.Request) (interface{}, error) {
	key, err := parseKey(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tree.Delete(key); err != nil {
		if errors.Is(err, tree.ErrKeyNotFound) {
			return nil, HttpNotFound(req.Context(), err)
		}
		return nil, errors.Wrapf(err, "failed to delete key %d", key)
	}
	s.metrics.setShape(s.tree.Len(), s.tree.MaxDepth())

	s.logger.Debug(req.Context(), "deleted key", logs.MapFields{"key": key, "len": s.tree.Len()})
	return InsertResponse{Key: key, Len: s.tree.Len()}, nil
}

func (s *TreeService) search(req *http.Request) (interface{}, error) {
	key, err := parseKey(req)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.tree.Search(key)
	if n == nil {
		return nil, HttpNotFound(req.Context(), errs.New(errs.CodeKeyNotFound, "key "+strconv.Itoa(key)+" not found"))
	}

	return NodeResponse{Key: n.Key(), Left: keyOf(n.Left()), Right: keyOf(n.Right())}, nil
}

func (s *TreeService) successor(req *http.Request) (interface{}, error) {
	key, err := parseKey(req)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.tree.Contains(key) {
		return nil, HttpNotFound(req.Context(), errs.New(errs.CodeKeyNotFound, "key "+strconv.Itoa(key)+" not found"))
	}

	return SuccessorResponse{Key: key, Successor: keyOf(s.tree.Successor(key))}, nil
}

func (s *TreeService) walk(req *http.Request) (interface{}, error) {
	order := mux.Vars(req)["order"]

	s.mu.RLock()
	defer s.mu.RUnlock()

	switch order {
	case "preorder":
		return WalkResponse{Order: order, Keys: s.tree.PreOrder()}, nil
	case "inorder":
		return WalkResponse{Order: order, Keys: s.tree.InOrder()}, nil
	case "postorder":
		return WalkResponse{Order: order, Keys: s.tree.PostOrder()}, nil
	case "levelorder":
		levels, err := s.tree.LevelOrder()
		if err != nil {
			return nil, HttpNotFound(req.Context(), err)
		}
		return LevelOrderResponse{Order: order, Levels: levels}, nil
	default:
		return nil, HttpBadRequest(req.Context(), errs.New(errs.CodeInvalidOrder, "unknown order "+strconv.Quote(order)))
	}
}

func (s *TreeService) stats(req *http.Request) (interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := StatsResponse{
		Len:      s.tree.Len(),
		MaxDepth: s.tree.MaxDepth(),
		MinDepth: s.tree.MinDepth(),
	}

	if min, err := s.tree.FindMin(); err == nil {
		res.Min = &min
	}
	if max, err := s.tree.FindMax(); err == nil {
		res.Max = &max
	}

	return res, nil
}

func keyOf(n *tree.Node) *int {
	if n == nil {
		return nil
	}

	k := n.Key()
	return &k
}
