package ast

// Short constructors used pervasively by tests.

func ID(name string) *Identifier { return NewIdentifier(name) }

func Str(value string) *StringLiteral { return NewStringLiteral(value) }

func Int(value int64) *IntegerLiteral { return NewIntegerLiteral(value) }

func Flt(value float64) *FloatLiteral { return NewFloatLiteral(value) }

func Bool(value bool) *BooleanLiteral { return NewBooleanLiteral(value) }

func NilList() *EmptyListLiteral { return NewEmptyListLiteral() }

func Leaf() *LeafLiteral { return NewLeafLiteral() }

func Un(operator string, operand Expression) *UnaryExpression {
	return NewUnaryExpression(operator, operand)
}

func Bin(operator string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Call(name string, args ...Expression) *CallExpression {
	return NewCallExpression(ID(name), args)
}

func Assign(name string, value Expression) *AssignmentStatement {
	return NewAssignmentStatement(ID(name), value)
}

func Ret(argument Expression) *ReturnStatement { return NewReturnStatement(argument) }

func Branch(condition Expression, body ...Statement) *ConditionalBranch {
	return NewConditionalBranch(condition, body)
}

func If(branches ...*ConditionalBranch) *IfStatement { return NewIfStatement(branches) }

func While(condition Expression, body ...Statement) *WhileStatement {
	return NewWhileStatement(condition, body)
}

func ForRange(variable string, from, to Expression, body ...Statement) *ForRangeStatement {
	return NewForRangeStatement(ID(variable), from, to, body)
}

func ForEach(variable string, iterable Expression, body ...Statement) *ForEachStatement {
	return NewForEachStatement(ID(variable), iterable, body)
}

func ExprStmt(expression Expression) *ExpressionStatement {
	return NewExpressionStatement(expression)
}

func Algo(name string, params []string, body ...Statement) *AlgorithmDefinition {
	return NewAlgorithmDefinition(name, params, body)
}
