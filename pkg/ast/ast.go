package ast

type NodeType string

const (
	NodeIdentifier          NodeType = "Identifier"
	NodeStringLiteral       NodeType = "StringLiteral"
	NodeIntegerLiteral      NodeType = "IntegerLiteral"
	NodeFloatLiteral        NodeType = "FloatLiteral"
	NodeBooleanLiteral      NodeType = "BooleanLiteral"
	NodeEmptyListLiteral    NodeType = "EmptyListLiteral"
	NodeLeafLiteral         NodeType = "LeafLiteral"
	NodeUnaryExpression     NodeType = "UnaryExpression"
	NodeBinaryExpression    NodeType = "BinaryExpression"
	NodeCallExpression      NodeType = "CallExpression"
	NodeInvalidExpression   NodeType = "InvalidExpression"
	NodeAssignmentStatement NodeType = "AssignmentStatement"
	NodeReturnStatement     NodeType = "ReturnStatement"
	NodeConditionalBranch   NodeType = "ConditionalBranch"
	NodeIfStatement         NodeType = "IfStatement"
	NodeWhileStatement      NodeType = "WhileStatement"
	NodeForRangeStatement   NodeType = "ForRangeStatement"
	NodeForEachStatement    NodeType = "ForEachStatement"
	NodeExpressionStatement NodeType = "ExpressionStatement"
	NodeAlgorithmDefinition NodeType = "AlgorithmDefinition"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type StringLiteral struct {
	nodeImpl
	expressionMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type IntegerLiteral struct {
	nodeImpl
	expressionMarker

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type FloatLiteral struct {
	nodeImpl
	expressionMarker

	Value float64 `json:"value"`
}

func NewFloatLiteral(value float64) *FloatLiteral {
	return &FloatLiteral{nodeImpl: newNodeImpl(NodeFloatLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

// EmptyListLiteral is the surface `Nil` token, the empty-list sentinel.
type EmptyListLiteral struct {
	nodeImpl
	expressionMarker
}

func NewEmptyListLiteral() *EmptyListLiteral {
	return &EmptyListLiteral{nodeImpl: newNodeImpl(NodeEmptyListLiteral)}
}

// LeafLiteral is the surface `leaf` token, the empty-tree sentinel.
type LeafLiteral struct {
	nodeImpl
	expressionMarker
}

func NewLeafLiteral() *LeafLiteral {
	return &LeafLiteral{nodeImpl: newNodeImpl(NodeLeafLiteral)}
}

// Expressions

type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Operand  Expression `json:"operand"`
}

func NewUnaryExpression(operator string, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryExpression(operator string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

type CallExpression struct {
	nodeImpl
	expressionMarker

	Callee    *Identifier  `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewCallExpression(callee *Identifier, arguments []Expression) *CallExpression {
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Callee: callee, Arguments: arguments}
}

// InvalidExpression preserves an expression line that failed to parse.
// Evaluating it raises an evaluation error carrying the original and
// normalized text; bare expression statements suppress that error, which
// keeps the runtime behaviour of unparseable no-op lines intact.
type InvalidExpression struct {
	nodeImpl
	expressionMarker

	Text       string `json:"text"`
	Normalized string `json:"normalized"`
	Message    string `json:"message"`
}

func NewInvalidExpression(text, normalized, message string) *InvalidExpression {
	return &InvalidExpression{nodeImpl: newNodeImpl(NodeInvalidExpression), Text: text, Normalized: normalized, Message: message}
}

// Statements

type AssignmentStatement struct {
	nodeImpl
	statementMarker

	Target *Identifier `json:"target"`
	Value  Expression  `json:"value"`
}

func NewAssignmentStatement(target *Identifier, value Expression) *AssignmentStatement {
	return &AssignmentStatement{nodeImpl: newNodeImpl(NodeAssignmentStatement), Target: target, Value: value}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Argument Expression `json:"argument,omitempty"`
}

func NewReturnStatement(argument Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Argument: argument}
}

// ConditionalBranch is one arm of an if statement. A nil Condition marks
// the else arm.
type ConditionalBranch struct {
	nodeImpl

	Condition Expression  `json:"condition,omitempty"`
	Body      []Statement `json:"body"`
}

func NewConditionalBranch(condition Expression, body []Statement) *ConditionalBranch {
	return &ConditionalBranch{nodeImpl: newNodeImpl(NodeConditionalBranch), Condition: condition, Body: body}
}

type IfStatement struct {
	nodeImpl
	statementMarker

	Branches []*ConditionalBranch `json:"branches"`
}

func NewIfStatement(branches []*ConditionalBranch) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Branches: branches}
}

type WhileStatement struct {
	nodeImpl
	statementMarker

	Condition Expression  `json:"condition"`
	Body      []Statement `json:"body"`
}

func NewWhileStatement(condition Expression, body []Statement) *WhileStatement {
	return &WhileStatement{nodeImpl: newNodeImpl(NodeWhileStatement), Condition: condition, Body: body}
}

// ForRangeStatement is `for v from a to b [do] ... endfor`; the range is
// inclusive on both ends.
type ForRangeStatement struct {
	nodeImpl
	statementMarker

	Variable *Identifier `json:"variable"`
	From     Expression  `json:"from"`
	To       Expression  `json:"to"`
	Body     []Statement `json:"body"`
}

func NewForRangeStatement(variable *Identifier, from, to Expression, body []Statement) *ForRangeStatement {
	return &ForRangeStatement{nodeImpl: newNodeImpl(NodeForRangeStatement), Variable: variable, From: from, To: to, Body: body}
}

// ForEachStatement is `for v in expr [do] ... endfor`.
type ForEachStatement struct {
	nodeImpl
	statementMarker

	Variable *Identifier `json:"variable"`
	Iterable Expression  `json:"iterable"`
	Body     []Statement `json:"body"`
}

func NewForEachStatement(variable *Identifier, iterable Expression, body []Statement) *ForEachStatement {
	return &ForEachStatement{nodeImpl: newNodeImpl(NodeForEachStatement), Variable: variable, Iterable: iterable, Body: body}
}

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewExpressionStatement(expression Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expression}
}

// AlgorithmDefinition is the compiled form of one `Algorithm Name(...)`
// block. Parameter names are unique within a definition.
type AlgorithmDefinition struct {
	nodeImpl

	Name   string      `json:"name"`
	Params []string    `json:"params"`
	Body   []Statement `json:"body"`
}

func NewAlgorithmDefinition(name string, params []string, body []Statement) *AlgorithmDefinition {
	return &AlgorithmDefinition{nodeImpl: newNodeImpl(NodeAlgorithmDefinition), Name: name, Params: params, Body: body}
}
