package networkname

const (
	MainnetChainName = "mainnet"
	SepoliaChainName = "sepolia"
	HoleskyChainName = "holesky"
	TestChainName    = "test"
)

var All = []string{
	MainnetChainName,
	SepoliaChainName,
	HoleskyChainName,
}
