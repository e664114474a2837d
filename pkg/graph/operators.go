package graph

import (
	"github.com/dd0wney/graphmatrix/pkg/edgestore"
	"github.com/dd0wney/graphmatrix/pkg/graphcore"
	"github.com/dd0wney/graphmatrix/pkg/indexing"
	"github.com/dd0wney/graphmatrix/pkg/kernel"
	"github.com/dd0wney/graphmatrix/pkg/valuetype"
	"github.com/dd0wney/graphmatrix/pkg/vertexstore"
)

func (g *Graph) vertexMask(mask *indexing.VertexTypeIndex) (*kernel.SparseVector[bool], error) {
	if mask == nil {
		return nil, nil
	}
	vec := g.vertices.VectorAt(*mask)
	if vec == nil {
		return nil, graphcore.NewLogicError(graphcore.InvalidIndex, "mask vertex type %d does not exist", *mask)
	}
	return vertexstore.RawVectorOf[bool](vec)
}

// ApplyUnaryOperatorToVertexVector computes
// vertex_vectors[product]<mask,accum> = op(vertex_vectors[arg]). The
// product slot's live vector is snapshotted first so a surrounding
// transaction can revert the bulk write in one step.
func ApplyUnaryOperatorToVertexVector[T valuetype.Scalar](g *Graph, product indexing.VertexTypeIndex, mask *indexing.VertexTypeIndex, accum kernel.BinaryOperator[T], op kernel.UnaryOperator[T], arg indexing.VertexTypeIndex) error {
	argVec, err := vertexstore.RawVectorOf[T](g.vertices.VectorAt(arg))
	if err != nil {
		return err
	}
	productAny := g.vertices.VectorAt(product)
	productTyped, err := vertexstore.VectorOf[T](productAny)
	if err != nil {
		return err
	}
	m, err := g.vertexMask(mask)
	if err != nil {
		return err
	}
	productTyped.RegisterSnapshot()
	return kernel.ApplyUnaryOperatorToVector(productTyped.Raw(), m, accum, op, argVec)
}

// ApplyIndexUnaryOperatorToVertexVector computes
// vertex_vectors[product]<mask,accum> = op(index, vertex_vectors[arg],
// thunk).
func ApplyIndexUnaryOperatorToVertexVector[T valuetype.Scalar](g *Graph, product indexing.VertexTypeIndex, mask *indexing.VertexTypeIndex, accum kernel.BinaryOperator[T], op kernel.IndexUnaryOperator[T], arg indexing.VertexTypeIndex, thunk T) error {
	argVec, err := vertexstore.RawVectorOf[T](g.vertices.VectorAt(arg))
	if err != nil {
		return err
	}
	productTyped, err := vertexstore.VectorOf[T](g.vertices.VectorAt(product))
	if err != nil {
		return err
	}
	m, err := g.vertexMask(mask)
	if err != nil {
		return err
	}
	productTyped.RegisterSnapshot()
	return kernel.ApplyIndexUnaryOperatorToVector(productTyped.Raw(), m, accum, op, argVec, thunk)
}

// ApplyScalarBinaryOperatorToVertexVector computes
// vertex_vectors[product]<mask,accum> = op(vertex_vectors[arg], scalar)
// (scalarOnRight) or op(scalar, vertex_vectors[arg]) otherwise.
func ApplyScalarBinaryOperatorToVertexVector[T valuetype.Scalar](g *Graph, product indexing.VertexTypeIndex, mask *indexing.VertexTypeIndex, accum kernel.BinaryOperator[T], op kernel.BinaryOperator[T], arg indexing.VertexTypeIndex, scalar T, scalarOnRight bool) error {
	argVec, err := vertexstore.RawVectorOf[T](g.vertices.VectorAt(arg))
	if err != nil {
		return err
	}
	productTyped, err := vertexstore.VectorOf[T](g.vertices.VectorAt(product))
	if err != nil {
		return err
	}
	m, err := g.vertexMask(mask)
	if err != nil {
		return err
	}
	productTyped.RegisterSnapshot()
	return kernel.ApplyScalarBinaryOperatorToVector(productTyped.Raw(), m, accum, op, argVec, scalar, scalarOnRight)
}

func (g *Graph) edgeMask(mask *indexing.EdgeTypeIndex) (*kernel.SparseMatrix[bool], error) {
	if mask == nil {
		return nil, nil
	}
	mat := g.edges.MatrixAt(*mask)
	if mat == nil {
		return nil, graphcore.NewLogicError(graphcore.InvalidIndex, "mask edge type %d does not exist", *mask)
	}
	return edgestore.RawMatrixOf[bool](mat)
}

// ApplyUnaryOperatorToAdjacencyMatrix is the adjacency-matrix analogue of
// ApplyUnaryOperatorToVertexVector.
func ApplyUnaryOperatorToAdjacencyMatrix[T valuetype.Scalar](g *Graph, product indexing.EdgeTypeIndex, mask *indexing.EdgeTypeIndex, accum kernel.BinaryOperator[T], op kernel.UnaryOperator[T], arg indexing.EdgeTypeIndex) error {
	argMat, err := edgestore.RawMatrixOf[T](g.edges.MatrixAt(arg))
	if err != nil {
		return err
	}
	productTyped, err := edgestore.MatrixOf[T](g.edges.MatrixAt(product))
	if err != nil {
		return err
	}
	m, err := g.edgeMask(mask)
	if err != nil {
		return err
	}
	productTyped.RegisterSnapshot()
	return kernel.ApplyUnaryOperatorToMatrix(productTyped.Raw(), m, accum, op, argMat)
}

// ApplyIndexUnaryOperatorToAdjacencyMatrix is the adjacency-matrix
// analogue of ApplyIndexUnaryOperatorToVertexVector.
func ApplyIndexUnaryOperatorToAdjacencyMatrix[T valuetype.Scalar](g *Graph, product indexing.EdgeTypeIndex, mask *indexing.EdgeTypeIndex, accum kernel.BinaryOperator[T], op kernel.IndexUnaryOperator[T], arg indexing.EdgeTypeIndex, thunk T) error {
	argMat, err := edgestore.RawMatrixOf[T](g.edges.MatrixAt(arg))
	if err != nil {
		return err
	}
	productTyped, err := edgestore.MatrixOf[T](g.edges.MatrixAt(product))
	if err != nil {
		return err
	}
	m, err := g.edgeMask(mask)
	if err != nil {
		return err
	}
	productTyped.RegisterSnapshot()
	return kernel.ApplyIndexUnaryOperatorToMatrix(productTyped.Raw(), m, accum, op, argMat, thunk)
}

// ApplyScalarBinaryOperatorToAdjacencyMatrix is the adjacency-matrix
// analogue of ApplyScalarBinaryOperatorToVertexVector.
func ApplyScalarBinaryOperatorToAdjacencyMatrix[T valuetype.Scalar](g *Graph, product indexing.EdgeTypeIndex, mask *indexing.EdgeTypeIndex, accum kernel.BinaryOperator[T], op kernel.BinaryOperator[T], arg indexing.EdgeTypeIndex, scalar T, scalarOnRight bool) error {
	argMat, err := edgestore.RawMatrixOf[T](g.edges.MatrixAt(arg))
	if err != nil {
		return err
	}
	productTyped, err := edgestore.MatrixOf[T](g.edges.MatrixAt(product))
	if err != nil {
		return err
	}
	m, err := g.edgeMask(mask)
	if err != nil {
		return err
	}
	productTyped.RegisterSnapshot()
	return kernel.ApplyScalarBinaryOperatorToMatrix(productTyped.Raw(), m, accum, op, argMat, scalar, scalarOnRight)
}
