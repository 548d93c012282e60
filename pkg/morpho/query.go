package morpho

// vaultsQuery selects every field the record mapper reads.
const vaultsQuery = `query Vaults($first: Int, $orderBy: VaultOrderBy, $orderDirection: OrderDirection, $where: VaultFilters) {
  vaults(first: $first, orderBy: $orderBy, orderDirection: $orderDirection, where: $where) {
    items {
      address
      name
      symbol
      whitelisted
      creationTimestamp
      asset {
        address
        symbol
        name
        decimals
      }
      chain {
        id
        network
      }
      state {
        apy
        netApy
        totalAssets
        totalAssetsUsd
        fee
        rewards {
          asset {
            address
          }
          supplyApr
          yearlySupplyTokens
        }
      }
    }
  }
}`
